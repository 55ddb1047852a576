package domain

import "github.com/google/uuid"

// Column is a named lane holding an ordered list of task ids. TaskIDs is the
// single source of truth for both membership and in-column order. A nil
// MaxTasks means the lane carries no WIP limit.
type Column struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Color    string   `json:"color"`
	TaskIDs  []string `json:"taskIds"`
	MaxTasks *int     `json:"maxTasks,omitempty"`
}

// NewColumnID generates a fresh column identifier.
func NewColumnID() string {
	return "column-" + uuid.NewString()
}

// ColumnUpdate carries partial updates for a column's display fields.
type ColumnUpdate struct {
	Title    *string
	Color    *string
	MaxTasks *int
}

// Merge returns a copy of c with every non-nil update applied.
func (c Column) Merge(upd ColumnUpdate) Column {
	out := c
	out.TaskIDs = append([]string(nil), c.TaskIDs...)
	if upd.Title != nil {
		out.Title = *upd.Title
	}
	if upd.Color != nil {
		out.Color = *upd.Color
	}
	if upd.MaxTasks != nil {
		m := *upd.MaxTasks
		out.MaxTasks = &m
	}
	return out
}

// Reorder returns a copy of ids with the element at sourceIndex removed and
// reinserted at destIndex. The insertion index addresses the already
// shortened sequence, so an element moved toward the end lands exactly at
// destIndex of the final order. destIndex is clamped to the shortened
// sequence bounds; insertion at its length appends. When sourceIndex is out
// of range the input order is returned unchanged.
func Reorder(ids []string, sourceIndex, destIndex int) []string {
	out := append([]string(nil), ids...)
	if sourceIndex < 0 || sourceIndex >= len(out) {
		return out
	}
	moved := out[sourceIndex]
	out = append(out[:sourceIndex], out[sourceIndex+1:]...)
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(out) {
		destIndex = len(out)
	}
	out = append(out, "")
	copy(out[destIndex+1:], out[destIndex:])
	out[destIndex] = moved
	return out
}

// MoveBetweenColumns removes the task id at sourceIndex from source and
// inserts it at destIndex into dest, returning updated copies of both
// columns. The two sequences are independent, so no index shifting between
// them occurs. Task records are untouched; the caller is responsible for
// repointing the moved task's Status at dest. When sourceIndex is out of
// range both columns are returned unchanged.
func MoveBetweenColumns(source, dest Column, sourceIndex, destIndex int) (Column, Column) {
	srcIDs := append([]string(nil), source.TaskIDs...)
	destIDs := append([]string(nil), dest.TaskIDs...)
	if sourceIndex < 0 || sourceIndex >= len(srcIDs) {
		source.TaskIDs = srcIDs
		dest.TaskIDs = destIDs
		return source, dest
	}
	moved := srcIDs[sourceIndex]
	srcIDs = append(srcIDs[:sourceIndex], srcIDs[sourceIndex+1:]...)
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(destIDs) {
		destIndex = len(destIDs)
	}
	destIDs = append(destIDs, "")
	copy(destIDs[destIndex+1:], destIDs[destIndex:])
	destIDs[destIndex] = moved

	source.TaskIDs = srcIDs
	dest.TaskIDs = destIDs
	return source, dest
}

// TaskCount reports the number of tasks in the column.
func (c Column) TaskCount() int {
	return len(c.TaskIDs)
}

// AtWipLimit reports whether the column has reached its WIP limit. Columns
// without a limit are never at it.
func (c Column) AtWipLimit() bool {
	if c.MaxTasks == nil {
		return false
	}
	return len(c.TaskIDs) >= *c.MaxTasks
}

// WouldExceedWipLimit reports whether adding additional tasks would push the
// column past its WIP limit.
func (c Column) WouldExceedWipLimit(additional int) bool {
	if c.MaxTasks == nil {
		return false
	}
	return len(c.TaskIDs)+additional > *c.MaxTasks
}
