package domain

import "fmt"

// Board is the complete state: the column mapping, the task mapping, and the
// lane display order. ColumnOrder is a permutation of the column mapping's
// keys; map iteration order is never meaningful.
type Board struct {
	Columns     map[string]Column `json:"columns"`
	Tasks       map[string]Task   `json:"tasks"`
	ColumnOrder []string          `json:"columnOrder"`
}

// DefaultBoard returns the compiled-in starting board: four empty lanes with
// an advisory WIP limit of 3 on In Progress.
func DefaultBoard() Board {
	inProgressLimit := 3
	return Board{
		Columns: map[string]Column{
			"todo":        {ID: "todo", Title: "To Do", Color: "#0ea5e9", TaskIDs: []string{}},
			"in-progress": {ID: "in-progress", Title: "In Progress", Color: "#f59e0b", TaskIDs: []string{}, MaxTasks: &inProgressLimit},
			"review":      {ID: "review", Title: "Review", Color: "#8b5cf6", TaskIDs: []string{}},
			"done":        {ID: "done", Title: "Done", Color: "#10b981", TaskIDs: []string{}},
		},
		Tasks:       map[string]Task{},
		ColumnOrder: []string{"todo", "in-progress", "review", "done"},
	}
}

// Clone returns a deep copy of the board. Mutating the copy never affects the
// original, so a clone handed out as a snapshot stays consistent while the
// canonical board moves on.
func (b Board) Clone() Board {
	out := Board{
		Columns:     make(map[string]Column, len(b.Columns)),
		Tasks:       make(map[string]Task, len(b.Tasks)),
		ColumnOrder: append(make([]string, 0, len(b.ColumnOrder)), b.ColumnOrder...),
	}
	for id, col := range b.Columns {
		col.TaskIDs = append(make([]string, 0, len(col.TaskIDs)), col.TaskIDs...)
		if col.MaxTasks != nil {
			m := *col.MaxTasks
			col.MaxTasks = &m
		}
		out.Columns[id] = col
	}
	for id, task := range b.Tasks {
		task.Tags = append([]string(nil), task.Tags...)
		if task.DueDate != nil {
			d := *task.DueDate
			task.DueDate = &d
		}
		out.Tasks[id] = task
	}
	return out
}

// Validate verifies the board's structural invariants: every task's status
// points at exactly the one column listing it, no task id appears twice,
// ColumnOrder is a permutation of the column keys, and any WIP limit is
// positive. It returns the first violation found, or nil for a consistent
// board.
func (b Board) Validate() error {
	owners := make(map[string]string, len(b.Tasks))
	for colID, col := range b.Columns {
		if col.ID != colID {
			return fmt.Errorf("column %s keyed under %s", col.ID, colID)
		}
		seen := make(map[string]struct{}, len(col.TaskIDs))
		for _, taskID := range col.TaskIDs {
			if _, dup := seen[taskID]; dup {
				return fmt.Errorf("task %s listed twice in column %s", taskID, colID)
			}
			seen[taskID] = struct{}{}
			if owner, claimed := owners[taskID]; claimed {
				return fmt.Errorf("task %s listed in columns %s and %s", taskID, owner, colID)
			}
			owners[taskID] = colID
		}
		if col.MaxTasks != nil && *col.MaxTasks < 1 {
			return fmt.Errorf("column %s has non-positive WIP limit %d", colID, *col.MaxTasks)
		}
	}
	for taskID, task := range b.Tasks {
		if task.ID != taskID {
			return fmt.Errorf("task %s keyed under %s", task.ID, taskID)
		}
		owner, ok := owners[taskID]
		if !ok {
			return fmt.Errorf("task %s not listed in any column", taskID)
		}
		if owner != task.Status {
			return fmt.Errorf("task %s has status %s but lives in column %s", taskID, task.Status, owner)
		}
		if _, ok := b.Columns[task.Status]; !ok {
			return fmt.Errorf("task %s points at unknown column %s", taskID, task.Status)
		}
	}
	for taskID, owner := range owners {
		if _, ok := b.Tasks[taskID]; !ok {
			return fmt.Errorf("column %s lists unknown task %s", owner, taskID)
		}
	}
	if len(b.ColumnOrder) != len(b.Columns) {
		return fmt.Errorf("column order lists %d columns, board has %d", len(b.ColumnOrder), len(b.Columns))
	}
	ordered := make(map[string]struct{}, len(b.ColumnOrder))
	for _, colID := range b.ColumnOrder {
		if _, ok := b.Columns[colID]; !ok {
			return fmt.Errorf("column order references unknown column %s", colID)
		}
		if _, dup := ordered[colID]; dup {
			return fmt.Errorf("column order lists %s twice", colID)
		}
		ordered[colID] = struct{}{}
	}
	return nil
}
