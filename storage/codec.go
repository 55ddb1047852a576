package storage

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"kanban-core/domain"
)

// EncodeBoard serializes the board to its persistence encoding: one JSON
// document with task timestamps as ISO-8601 text.
func EncodeBoard(b domain.Board) ([]byte, error) {
	return sonic.ConfigStd.Marshal(b)
}

// DecodeBoard parses a persisted board, rehydrating createdAt/dueDate text
// back into timestamp values and normalizing absent collections to empty
// ones. The decoded board is checked for structural consistency so a
// corrupted payload never becomes the canonical state.
func DecodeBoard(data []byte) (domain.Board, error) {
	var b domain.Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return domain.Board{}, fmt.Errorf("decode board: %w", err)
	}
	if b.Columns == nil {
		b.Columns = map[string]domain.Column{}
	}
	if b.Tasks == nil {
		b.Tasks = map[string]domain.Task{}
	}
	for id, col := range b.Columns {
		if col.TaskIDs == nil {
			col.TaskIDs = []string{}
			b.Columns[id] = col
		}
	}
	for id, task := range b.Tasks {
		if task.CreatedAt.IsZero() {
			return domain.Board{}, fmt.Errorf("task %s has no creation timestamp", id)
		}
	}
	if err := b.Validate(); err != nil {
		return domain.Board{}, fmt.Errorf("decoded board inconsistent: %w", err)
	}
	return b, nil
}

// Save writes the board to the slot under key.
func Save(ctx context.Context, slot Slot, key string, b domain.Board) error {
	data, err := EncodeBoard(b)
	if err != nil {
		return err
	}
	return slot.Set(ctx, key, data)
}

// Load reads the board from the slot. It reports ok=false when the slot is
// empty or holds a payload that cannot be decoded; callers fall back to the
// default board in either case. Read and parse failures are returned for
// logging but never carry a partially decoded board.
func Load(ctx context.Context, slot Slot, key string) (domain.Board, bool, error) {
	data, ok, err := slot.Get(ctx, key)
	if err != nil {
		return domain.Board{}, false, err
	}
	if !ok {
		return domain.Board{}, false, nil
	}
	b, err := DecodeBoard(data)
	if err != nil {
		return domain.Board{}, false, err
	}
	return b, true, nil
}
