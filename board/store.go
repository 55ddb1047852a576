// Package board holds the stateful store orchestrating all mutations of the
// canonical kanban board. The store composes the pure engines in the domain
// package, persists every transition through an injected storage slot, and
// hands consistent snapshots to readers. It is the sole mutator of the board;
// everything it returns is a deep copy.
package board

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"kanban-core/domain"
	"kanban-core/notify"
	"kanban-core/storage"
)

// Store owns the canonical board. All five mutating operations are serialized
// behind a single writer lock; reads work against deep-copied snapshots and
// never observe a partial transition.
type Store struct {
	mu     sync.RWMutex
	board  domain.Board
	slot   storage.Slot
	key    string
	logger *log.Logger
	pub    notify.Publisher
}

// New creates a store starting from any board previously saved in slot,
// falling back to the default board when the slot is empty or unreadable. A
// nil slot disables persistence; a nil logger falls back to the standard one.
func New(ctx context.Context, slot storage.Slot, key string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if key == "" {
		key = storage.DefaultKey
	}
	s := &Store{slot: slot, key: key, logger: logger, board: domain.DefaultBoard()}
	if slot != nil {
		saved, ok, err := storage.Load(ctx, slot, key)
		switch {
		case err != nil:
			logger.WithError(err).WithField("key", key).Warn("saved board unreadable, starting from default")
		case ok:
			s.board = saved
		}
	}
	return s
}

// SetPublisher wires a change publisher. Publishing is fire-and-forget:
// failures are logged and never affect the in-memory mutation.
func (s *Store) SetPublisher(pub notify.Publisher) {
	s.pub = pub
}

// CreateTask builds a task via the factory and appends it to the end of the
// target column, returning the new task's id. An unknown column leaves the
// board unchanged and returns an empty id; a blank title is rejected with a
// *domain.ValidationError.
func (s *Store) CreateTask(ctx context.Context, columnID string, in domain.TaskInput) (taskID string, err error) {
	m, ctx := newMutationMetrics(ctx, s.logger, "create_task")
	defer func() { m.Finish(err) }()

	s.mu.Lock()
	col, ok := s.board.Columns[columnID]
	if !ok {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return "", nil
	}
	task, err := domain.NewTask(columnID, in)
	if err != nil {
		s.mu.Unlock()
		m.SetOutcome(outcomeRejected)
		return "", err
	}
	s.board.Tasks[task.ID] = task
	col.TaskIDs = append(append([]string(nil), col.TaskIDs...), task.ID)
	s.board.Columns[columnID] = col
	s.mu.Unlock()

	m.SetTask(task.ID)
	s.afterMutation(ctx, notify.Event{Kind: notify.TaskCreated, TaskID: task.ID, ToColumn: columnID})
	return task.ID, nil
}

// UpdateTask merges the partial update into the task. When the update changes
// the task's status, the id is removed from the old column and appended to
// the new one in the same transition, so no observer ever sees the task in
// neither or both columns. Unknown task or column references are silent
// no-ops.
func (s *Store) UpdateTask(ctx context.Context, taskID string, upd domain.TaskUpdate) {
	m, ctx := newMutationMetrics(ctx, s.logger, "update_task")
	m.SetTask(taskID)
	defer m.Finish(nil)

	s.mu.Lock()
	task, ok := s.board.Tasks[taskID]
	if !ok {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return
	}

	ev := notify.Event{Kind: notify.TaskUpdated, TaskID: taskID}
	if upd.Status != nil && *upd.Status != task.Status {
		oldCol, okOld := s.board.Columns[task.Status]
		newCol, okNew := s.board.Columns[*upd.Status]
		if !okOld || !okNew {
			s.mu.Unlock()
			m.SetOutcome(outcomeNoop)
			return
		}
		kept := make([]string, 0, len(oldCol.TaskIDs))
		for _, id := range oldCol.TaskIDs {
			if id != taskID {
				kept = append(kept, id)
			}
		}
		oldCol.TaskIDs = kept
		newCol.TaskIDs = append(append([]string(nil), newCol.TaskIDs...), taskID)
		ev.FromColumn = oldCol.ID
		ev.ToColumn = newCol.ID

		s.board.Columns[oldCol.ID] = oldCol
		s.board.Columns[newCol.ID] = newCol
	}
	s.board.Tasks[taskID] = task.Merge(upd)
	s.mu.Unlock()

	s.afterMutation(ctx, ev)
}

// DeleteTask removes the task from the task mapping and from its owning
// column. Unknown task or column references are silent no-ops.
func (s *Store) DeleteTask(ctx context.Context, taskID string) {
	m, ctx := newMutationMetrics(ctx, s.logger, "delete_task")
	m.SetTask(taskID)
	defer m.Finish(nil)

	s.mu.Lock()
	task, ok := s.board.Tasks[taskID]
	if !ok {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return
	}
	col, ok := s.board.Columns[task.Status]
	if !ok {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return
	}
	kept := make([]string, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	col.TaskIDs = kept
	s.board.Columns[col.ID] = col
	delete(s.board.Tasks, taskID)
	s.mu.Unlock()

	s.afterMutation(ctx, notify.Event{Kind: notify.TaskDeleted, TaskID: taskID, FromColumn: col.ID})
}

// MoveTask applies a terminal drop: a same-column reorder when both column
// ids match, otherwise a cross-column move that also repoints the task's
// status, as one transition. The operation is a silent no-op when the task or
// either column is unknown, or when the task is not actually in the source
// column.
func (s *Store) MoveTask(ctx context.Context, taskID, fromColumnID, toColumnID string, newIndex int) {
	m, ctx := newMutationMetrics(ctx, s.logger, "move_task")
	m.SetTask(taskID)
	defer m.Finish(nil)

	s.mu.Lock()
	task, okTask := s.board.Tasks[taskID]
	source, okSource := s.board.Columns[fromColumnID]
	dest, okDest := s.board.Columns[toColumnID]
	if !okTask || !okSource || !okDest {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return
	}
	sourceIndex := -1
	for i, id := range source.TaskIDs {
		if id == taskID {
			sourceIndex = i
			break
		}
	}
	if sourceIndex == -1 {
		s.mu.Unlock()
		m.SetOutcome(outcomeNoop)
		return
	}

	if fromColumnID == toColumnID {
		source.TaskIDs = domain.Reorder(source.TaskIDs, sourceIndex, newIndex)
		s.board.Columns[fromColumnID] = source
	} else {
		updatedSource, updatedDest := domain.MoveBetweenColumns(source, dest, sourceIndex, newIndex)
		task.Status = toColumnID
		s.board.Columns[fromColumnID] = updatedSource
		s.board.Columns[toColumnID] = updatedDest
		s.board.Tasks[taskID] = task
	}
	s.mu.Unlock()

	s.afterMutation(ctx, notify.Event{Kind: notify.TaskMoved, TaskID: taskID, FromColumn: fromColumnID, ToColumn: toColumnID})
}

// Reset restores the compiled-in default board and clears the storage slot.
func (s *Store) Reset(ctx context.Context) {
	m, ctx := newMutationMetrics(ctx, s.logger, "reset")
	defer m.Finish(nil)

	s.mu.Lock()
	s.board = domain.DefaultBoard()
	s.mu.Unlock()

	if s.slot != nil {
		if err := s.slot.Remove(ctx, s.key); err != nil {
			s.logger.WithError(err).WithField("key", s.key).Error("failed to clear board slot")
		}
	}
	s.publish(ctx, notify.Event{Kind: notify.BoardReset})
}

// LoadBoard replaces the canonical board with the provided state after
// verifying its structural invariants.
func (s *Store) LoadBoard(ctx context.Context, b domain.Board) (err error) {
	m, ctx := newMutationMetrics(ctx, s.logger, "load_board")
	defer func() { m.Finish(err) }()

	if err = b.Validate(); err != nil {
		m.SetOutcome(outcomeRejected)
		return err
	}
	s.mu.Lock()
	s.board = b.Clone()
	s.mu.Unlock()

	s.afterMutation(ctx, notify.Event{Kind: notify.BoardLoaded})
	return nil
}

// Snapshot returns a deep copy of the current board.
func (s *Store) Snapshot() domain.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// OrderedColumns returns the columns sorted by their position in the board's
// column order. A column missing from the order sorts last (by id, to stay
// deterministic); a consistent board never has one.
func (s *Store) OrderedColumns() []domain.Column {
	snapshot := s.Snapshot()
	position := make(map[string]int, len(snapshot.ColumnOrder))
	for i, id := range snapshot.ColumnOrder {
		position[id] = i
	}
	cols := make([]domain.Column, 0, len(snapshot.Columns))
	for _, col := range snapshot.Columns {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool {
		pi, iOrdered := position[cols[i].ID]
		pj, jOrdered := position[cols[j].ID]
		switch {
		case iOrdered && jOrdered:
			return pi < pj
		case iOrdered:
			return true
		case jOrdered:
			return false
		default:
			return cols[i].ID < cols[j].ID
		}
	})
	return cols
}

// TasksOf materializes a column's ordered task list. Ids without a matching
// task record are dropped rather than failing, so a transiently inconsistent
// snapshot still renders.
func (s *Store) TasksOf(columnID string) []domain.Task {
	snapshot := s.Snapshot()
	col, ok := snapshot.Columns[columnID]
	if !ok {
		return []domain.Task{}
	}
	tasks := make([]domain.Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if task, ok := snapshot.Tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// afterMutation persists the new state and broadcasts the change. Both are
// fire-and-forget: the in-memory mutation stands regardless of their outcome.
func (s *Store) afterMutation(ctx context.Context, ev notify.Event) {
	if s.slot != nil {
		if err := storage.Save(ctx, s.slot, s.key, s.Snapshot()); err != nil {
			s.logger.WithError(err).WithField("key", s.key).Error("failed to persist board")
		}
	}
	s.publish(ctx, ev)
}

func (s *Store) publish(ctx context.Context, ev notify.Event) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.logger.WithError(err).WithField("kind", ev.Kind).Error("failed to publish board update")
	}
}
