package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
)

// ValidateTitle checks that a title is non-empty after trimming.
// The store itself assumes valid input; this runs at the command layer.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return clierr.New(clierr.InvalidTitle, "title must not be empty")
	}
	return nil
}

// ValidateCategory checks that a category is in the fixed set.
func ValidateCategory(c string) error {
	for _, known := range Categories() {
		if Category(c) == known {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidCategory, "invalid category %q", c).
		WithDetails(map[string]any{
			"category": c,
			"allowed":  CategoryNames(),
		})
}

// ValidateDueDate parses and normalizes a YYYY-MM-DD due date.
func ValidateDueDate(input string) (string, error) {
	d, err := date.ParseDay(input)
	if err != nil {
		return "", clierr.Newf(clierr.InvalidDate, "invalid due date: %v", err).
			WithDetails(map[string]any{"input": input})
	}
	return d, nil
}

// ValidateClock parses and normalizes an HH:MM time-of-day string.
func ValidateClock(field, input string) (string, error) {
	c, err := date.ParseClock(input)
	if err != nil {
		return "", clierr.Newf(clierr.InvalidTime, "invalid %s time: %v", field, err).
			WithDetails(map[string]any{"field": field, "input": input})
	}
	return c, nil
}

// ValidateTaskID returns a structured error for unparseable task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}

// NotFound returns a structured error for a task ID with no matching task.
func NotFound(id int) *clierr.Error {
	return clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}

// SubtaskNotFound returns a structured error for a missing subtask.
func SubtaskNotFound(taskID, subtaskID int) *clierr.Error {
	return clierr.Newf(clierr.SubtaskNotFound, "subtask #%d not found on task #%d", subtaskID, taskID).
		WithDetails(map[string]any{"task_id": taskID, "subtask_id": subtaskID})
}
