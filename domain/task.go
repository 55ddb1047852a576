package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority orders tasks from most to least urgent.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort weight of a priority; urgent sorts first. An empty or
// unknown priority ranks as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

// Task represents a single board item. Status holds the id of the column the
// task currently lives in and must match that column's membership.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    Priority   `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// TaskInput carries the caller-supplied fields for a new task.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Assignee    string
	Tags        []string
	DueDate     *time.Time
}

// NewTaskID generates a fresh task identifier.
func NewTaskID() string {
	return "task-" + uuid.NewString()
}

// NewTask builds a task for the given column, assigning a fresh identifier
// and creation timestamp and filling defaults for absent fields. It does not
// touch any board; inserting the task is the store's job.
func NewTask(columnID string, in TaskInput) (Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Task{}, &ValidationError{Errors: []string{msgTitleRequired}}
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	tags := make([]string, 0, len(in.Tags))
	tags = append(tags, in.Tags...)
	return Task{
		ID:          NewTaskID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      columnID,
		Priority:    priority,
		Assignee:    in.Assignee,
		Tags:        tags,
		CreatedAt:   time.Now(),
		DueDate:     in.DueDate,
	}, nil
}

// TaskUpdate carries partial updates for a task. Nil fields are left
// unchanged by Merge.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *Priority
	Assignee    *string
	Tags        *[]string
	DueDate     *time.Time
}

// Merge returns a copy of t with every non-nil update applied.
func (t Task) Merge(upd TaskUpdate) Task {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	if upd.Title != nil {
		out.Title = *upd.Title
	}
	if upd.Description != nil {
		out.Description = *upd.Description
	}
	if upd.Status != nil {
		out.Status = *upd.Status
	}
	if upd.Priority != nil {
		out.Priority = *upd.Priority
	}
	if upd.Assignee != nil {
		out.Assignee = *upd.Assignee
	}
	if upd.Tags != nil {
		out.Tags = append([]string(nil), *upd.Tags...)
	}
	if upd.DueDate != nil {
		d := *upd.DueDate
		out.DueDate = &d
	}
	return out
}

// AddTag returns a copy of t with tag appended. Duplicates are suppressed, so
// adding an existing tag returns an equivalent task.
func (t Task) AddTag(tag string) Task {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	for _, existing := range out.Tags {
		if existing == tag {
			return out
		}
	}
	out.Tags = append(out.Tags, tag)
	return out
}
