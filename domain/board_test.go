package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestDefaultBoard(t *testing.T) {
	b := DefaultBoard()

	if err := b.Validate(); err != nil {
		t.Fatalf("default board invalid: %v", err)
	}
	if !reflect.DeepEqual(b.ColumnOrder, []string{"todo", "in-progress", "review", "done"}) {
		t.Fatalf("unexpected column order: %v", b.ColumnOrder)
	}
	if len(b.Tasks) != 0 {
		t.Fatalf("default board should have no tasks")
	}
	inProgress := b.Columns["in-progress"]
	if inProgress.MaxTasks == nil || *inProgress.MaxTasks != 3 {
		t.Fatalf("expected WIP limit 3 on in-progress, got %v", inProgress.MaxTasks)
	}
	for _, id := range []string{"todo", "review", "done"} {
		if b.Columns[id].MaxTasks != nil {
			t.Fatalf("column %s should carry no WIP limit", id)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	due := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	b := DefaultBoard()
	b.Tasks["t1"] = Task{ID: "t1", Title: "T", Status: "todo", Tags: []string{"a"}, DueDate: &due}
	col := b.Columns["todo"]
	col.TaskIDs = []string{"t1"}
	b.Columns["todo"] = col

	clone := b.Clone()

	clone.Columns["todo"].TaskIDs[0] = "other"
	cloneTask := clone.Tasks["t1"]
	cloneTask.Tags[0] = "mutated"
	*cloneTask.DueDate = due.AddDate(1, 0, 0)
	clone.ColumnOrder[0] = "done"

	if b.Columns["todo"].TaskIDs[0] != "t1" {
		t.Fatalf("clone shares task id slice")
	}
	if b.Tasks["t1"].Tags[0] != "a" {
		t.Fatalf("clone shares tag slice")
	}
	if !b.Tasks["t1"].DueDate.Equal(due) {
		t.Fatalf("clone shares due date pointer")
	}
	if b.ColumnOrder[0] != "todo" {
		t.Fatalf("clone shares column order slice")
	}
}

func TestValidateDetectsViolations(t *testing.T) {
	base := func() Board {
		b := DefaultBoard()
		b.Tasks["t1"] = Task{ID: "t1", Title: "T", Status: "todo"}
		col := b.Columns["todo"]
		col.TaskIDs = []string{"t1"}
		b.Columns["todo"] = col
		return b
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base board should validate: %v", err)
	}

	orphanStatus := base()
	task := orphanStatus.Tasks["t1"]
	task.Status = "done"
	orphanStatus.Tasks["t1"] = task
	if orphanStatus.Validate() == nil {
		t.Fatalf("expected status/membership mismatch to fail")
	}

	doubleListed := base()
	col := doubleListed.Columns["done"]
	col.TaskIDs = []string{"t1"}
	doubleListed.Columns["done"] = col
	if doubleListed.Validate() == nil {
		t.Fatalf("expected task in two columns to fail")
	}

	duplicated := base()
	col = duplicated.Columns["todo"]
	col.TaskIDs = []string{"t1", "t1"}
	duplicated.Columns["todo"] = col
	if duplicated.Validate() == nil {
		t.Fatalf("expected duplicate id within a column to fail")
	}

	danglingID := base()
	col = danglingID.Columns["todo"]
	col.TaskIDs = []string{"t1", "ghost"}
	danglingID.Columns["todo"] = col
	if danglingID.Validate() == nil {
		t.Fatalf("expected unknown listed task to fail")
	}

	badOrder := base()
	badOrder.ColumnOrder = []string{"todo", "in-progress", "review"}
	if badOrder.Validate() == nil {
		t.Fatalf("expected truncated column order to fail")
	}

	badLimit := base()
	zero := 0
	col = badLimit.Columns["review"]
	col.MaxTasks = &zero
	badLimit.Columns["review"] = col
	if badLimit.Validate() == nil {
		t.Fatalf("expected non-positive WIP limit to fail")
	}
}
