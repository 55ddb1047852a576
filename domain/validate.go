package domain

import "strings"

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxColumnTitleLen = 50

	msgTitleRequired       = "Title is required"
	msgTitleTooLong        = "Title must be less than 200 characters"
	msgDescriptionTooLong  = "Description must be less than 2000 characters"
	msgColumnIDRequired    = "Column ID is required"
	msgColumnTitleRequired = "Column title is required"
	msgColumnTitleTooLong  = "Column title must be less than 50 characters"
	msgColumnColorRequired = "Column color is required"
	msgMaxTasksTooSmall    = "Max tasks must be at least 1"
)

// ValidationError reports field constraint violations, one message per
// violated rule.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Result is the outcome of a validation pass. Errors holds one human-readable
// message per violated rule, in rule order.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateTask checks a candidate task's field constraints. Every rule is
// evaluated; the result collects all violations rather than stopping at the
// first. It never mutates the candidate, and callers are expected to check
// Valid before handing the task to the store.
func ValidateTask(t Task) Result {
	errs := []string{}
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, msgTitleRequired)
	}
	if t.Title != "" && len(t.Title) > maxTitleLen {
		errs = append(errs, msgTitleTooLong)
	}
	if t.Description != "" && len(t.Description) > maxDescriptionLen {
		errs = append(errs, msgDescriptionTooLong)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateColumn checks a candidate column's field constraints, collecting
// every violation.
func ValidateColumn(c Column) Result {
	errs := []string{}
	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, msgColumnIDRequired)
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, msgColumnTitleRequired)
	}
	if c.Title != "" && len(c.Title) > maxColumnTitleLen {
		errs = append(errs, msgColumnTitleTooLong)
	}
	if strings.TrimSpace(c.Color) == "" {
		errs = append(errs, msgColumnColorRequired)
	}
	if c.MaxTasks != nil && *c.MaxTasks < 1 {
		errs = append(errs, msgMaxTasksTooSmall)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
