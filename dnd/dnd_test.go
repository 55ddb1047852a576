package dnd

import (
	"context"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

type fakeMover struct {
	calls []MoveRequest
}

func (f *fakeMover) MoveTask(_ context.Context, taskID, fromColumnID, toColumnID string, newIndex int) {
	f.calls = append(f.calls, MoveRequest{TaskID: taskID, FromColumn: fromColumnID, ToColumn: toColumnID, Index: newIndex})
}

func newTestSession(t *testing.T) (*Session, *fakeMover) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	mover := &fakeMover{}
	return NewSession(mover, logger), mover
}

func TestEndCommitsDrop(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	s.Over(DropTarget{ColumnID: "done", Index: 2, HasIndex: true})
	req, ok := s.End(context.Background())

	if !ok {
		t.Fatalf("expected commit")
	}
	want := MoveRequest{TaskID: "task-1", FromColumn: "todo", ToColumn: "done", Index: 2}
	if req != want {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !reflect.DeepEqual(mover.calls, []MoveRequest{want}) {
		t.Fatalf("unexpected mover calls: %+v", mover.calls)
	}
}

func TestDropWithoutSlotDefaultsToTop(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	s.Over(DropTarget{ColumnID: "review"})
	req, ok := s.End(context.Background())

	if !ok || req.Index != 0 {
		t.Fatalf("expected drop at index 0, got %+v ok=%v", req, ok)
	}
	if mover.calls[0].Index != 0 {
		t.Fatalf("unexpected mover call: %+v", mover.calls[0])
	}
}

func TestOverNeverTouchesTheBoard(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	s.Over(DropTarget{ColumnID: "in-progress", Index: 1, HasIndex: true})
	s.Over(DropTarget{ColumnID: "done", Index: 0, HasIndex: true})

	if len(mover.calls) != 0 {
		t.Fatalf("hover must not move tasks: %+v", mover.calls)
	}

	taskID, target, ok := s.Hovering()
	if !ok || taskID != "task-1" || target.ColumnID != "done" {
		t.Fatalf("unexpected hover state: %q %+v %v", taskID, target, ok)
	}
}

func TestCancelDiscardsDrag(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	s.Over(DropTarget{ColumnID: "done", Index: 1, HasIndex: true})
	s.Cancel()

	if _, ok := s.End(context.Background()); ok {
		t.Fatalf("cancelled drag must not commit")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("cancelled drag moved tasks: %+v", mover.calls)
	}
	if _, _, ok := s.Hovering(); ok {
		t.Fatalf("session still active after cancel")
	}
}

func TestEndWithoutTargetIsNoop(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	if _, ok := s.End(context.Background()); ok {
		t.Fatalf("drag without target must not commit")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("unexpected mover calls: %+v", mover.calls)
	}
}

func TestEndWithoutStartIsNoop(t *testing.T) {
	s, mover := newTestSession(t)

	if _, ok := s.End(context.Background()); ok {
		t.Fatalf("end without start must not commit")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("unexpected mover calls: %+v", mover.calls)
	}
}

func TestRestartReplacesActiveDrag(t *testing.T) {
	s, mover := newTestSession(t)

	s.Start("task-1", "todo")
	s.Over(DropTarget{ColumnID: "done", Index: 1, HasIndex: true})
	s.Start("task-2", "review")
	s.Over(DropTarget{ColumnID: "todo", Index: 0, HasIndex: true})
	req, ok := s.End(context.Background())

	if !ok || req.TaskID != "task-2" || req.FromColumn != "review" {
		t.Fatalf("expected the second drag to commit, got %+v ok=%v", req, ok)
	}
	if len(mover.calls) != 1 {
		t.Fatalf("first drag leaked a commit: %+v", mover.calls)
	}
}
