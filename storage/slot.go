// Package storage persists the board as a single text blob under one
// well-known key. The Slot abstraction keeps the board store independent of
// the durable medium, so tests run against an in-memory slot while
// deployments use Redis.
package storage

import "context"

// DefaultKey is the storage slot the board is saved under when the caller
// does not configure one.
const DefaultKey = "kanban-board-state"

// Slot is a durable key-value cell. Get reports ok=false when the key holds
// nothing; implementations must not treat an absent key as an error.
type Slot interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
}
