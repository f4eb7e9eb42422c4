// Package view provides read-only projections over task collections:
// filtering, ordering, and aggregate statistics.
package view

import (
	"sort"
	"time"

	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// StatusFilter selects tasks by completion state relative to the current day.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
	FilterOverdue   StatusFilter = "overdue"
	FilterToday     StatusFilter = "today"
)

// ValidStatusFilters returns the accepted --filter values.
func ValidStatusFilters() []string {
	return []string{
		string(FilterAll),
		string(FilterPending),
		string(FilterCompleted),
		string(FilterOverdue),
		string(FilterToday),
	}
}

// ParseStatusFilter validates a filter name from user input.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	for _, v := range ValidStatusFilters() {
		if s == v {
			return StatusFilter(s), true
		}
	}
	return "", false
}

// Options defines which tasks a projection includes.
type Options struct {
	Status   StatusFilter
	Category task.Category // empty = no category filter
}

// Apply filters tasks by the given options and returns them sorted by their
// explicit order rank. The input slice is never modified.
func Apply(tasks []task.Task, opts Options, now time.Time) []task.Task {
	today := date.Today(now)

	var result []task.Task
	for _, t := range tasks {
		if !matchesStatus(t, opts.Status, today) {
			continue
		}
		if opts.Category != "" && t.Category != opts.Category {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}

func matchesStatus(t task.Task, f StatusFilter, today string) bool {
	switch f {
	case FilterPending:
		return !t.Done
	case FilterCompleted:
		return t.Done
	case FilterOverdue:
		// Dates are compared as strings; the day format sorts
		// lexicographically in calendar order.
		return !t.Done && t.DueDate != "" && t.DueDate < today
	case FilterToday:
		return !t.Done && t.DueDate == today
	default:
		return true
	}
}
