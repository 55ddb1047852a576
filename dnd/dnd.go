// Package dnd models the drag-and-drop lifecycle that sits between an input
// surface and the board store. Hover events are informational only; the board
// is touched exactly once, when a drag ends over a valid target.
package dnd

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Mover is the single board capability a drag session needs. board.Store
// satisfies it.
type Mover interface {
	MoveTask(ctx context.Context, taskID, fromColumnID, toColumnID string, newIndex int)
}

// DropTarget is the position a drag currently hovers over. HasIndex is false
// when the pointer is over a column body rather than a specific slot; such
// drops land at index 0.
type DropTarget struct {
	ColumnID string
	Index    int
	HasIndex bool
}

// MoveRequest is the terminal drop handed to the mover.
type MoveRequest struct {
	TaskID     string
	FromColumn string
	ToColumn   string
	Index      int
}

// Session tracks one drag at a time. Start begins a drag, Over updates the
// hovered target without touching the board, End commits the drop through the
// mover, and Cancel discards the drag entirely.
type Session struct {
	mover  Mover
	logger *log.Logger

	mu     sync.Mutex
	active bool
	taskID string
	from   string
	target DropTarget
}

func NewSession(mover Mover, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Session{mover: mover, logger: logger}
}

// Start begins dragging taskID out of fromColumn. Starting while another drag
// is active replaces it; the previous drag is discarded uncommitted.
func (s *Session) Start(taskID, fromColumn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.logger.WithField("task_id", s.taskID).Debug("drag replaced before it ended")
	}
	s.active = true
	s.taskID = taskID
	s.from = fromColumn
	s.target = DropTarget{}
}

// Over records the currently hovered target. It is purely informational and
// never mutates the board; calling it without an active drag is a no-op.
func (s *Session) Over(target DropTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.target = target
}

// Hovering reports the active drag's task and current target, for rendering
// drop indicators.
func (s *Session) Hovering() (taskID string, target DropTarget, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskID, s.target, s.active
}

// End commits the drag through the mover and returns the request it issued.
// A drag that ends without ever hovering a target, or with no active drag at
// all, commits nothing.
func (s *Session) End(ctx context.Context) (MoveRequest, bool) {
	s.mu.Lock()
	if !s.active || s.target.ColumnID == "" {
		s.reset()
		s.mu.Unlock()
		return MoveRequest{}, false
	}
	req := MoveRequest{
		TaskID:     s.taskID,
		FromColumn: s.from,
		ToColumn:   s.target.ColumnID,
	}
	if s.target.HasIndex {
		req.Index = s.target.Index
	}
	s.reset()
	s.mu.Unlock()

	s.mover.MoveTask(ctx, req.TaskID, req.FromColumn, req.ToColumn, req.Index)
	return req, true
}

// Cancel discards the active drag without touching the board.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.active = false
	s.taskID = ""
	s.from = ""
	s.target = DropTarget{}
}
