// Package view holds pure presentation helpers for rendering board state:
// date labels, overdue detection, assignee initials and priority ordering.
// Nothing here mutates a board.
package view

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"kanban-core/domain"
)

// Priority accent colors, one per rank.
var priorityColors = map[domain.Priority]string{
	domain.PriorityUrgent: "#ef4444",
	domain.PriorityHigh:   "#f97316",
	domain.PriorityMedium: "#eab308",
	domain.PriorityLow:    "#6b7280",
}

// PriorityColor returns the accent color for a priority. Unknown values get
// the medium color, matching the rank fallback.
func PriorityColor(p domain.Priority) string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return priorityColors[domain.PriorityMedium]
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsOverdue reports whether the task's due date falls on a calendar day
// before now. A task due today is not overdue, and a task with no due date
// never is.
func IsOverdue(task domain.Task, now time.Time) bool {
	if task.DueDate == nil {
		return false
	}
	due := *task.DueDate
	if sameDay(due, now) {
		return false
	}
	return due.Before(now)
}

// FormatDate renders a date for a card label: "Today" for the current day,
// otherwise the short form "Jan 2, 2006".
func FormatDate(t, now time.Time) string {
	if sameDay(t, now) {
		return "Today"
	}
	return t.Format("Jan 2, 2006")
}

// Initials derives up to two uppercase initials from an assignee name, or "?"
// when the name is blank.
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	initials := make([]rune, 0, 2)
	for _, field := range fields {
		initials = append(initials, unicode.ToUpper([]rune(field)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// SortByPriority returns the tasks ordered most urgent first. The sort is
// stable so tasks of equal priority keep their column order.
func SortByPriority(tasks []domain.Task) []domain.Task {
	out := append(make([]domain.Task, 0, len(tasks)), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// FilterByColumn collects the tasks whose status points at the given column,
// sorted by id for determinism. Column order is authoritative for rendering;
// this is for status-based queries over the whole board.
func FilterByColumn(tasks map[string]domain.Task, columnID string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == columnID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FilterByAssignee returns the tasks assigned to the given name.
func FilterByAssignee(tasks []domain.Task, assignee string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Assignee == assignee {
			out = append(out, task)
		}
	}
	return out
}

// FilterByTag returns the tasks carrying the given tag.
func FilterByTag(tasks []domain.Task, tag string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		for _, have := range task.Tags {
			if have == tag {
				out = append(out, task)
				break
			}
		}
	}
	return out
}
