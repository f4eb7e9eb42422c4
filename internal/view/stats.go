package view

import (
	"math"
	"time"

	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// CategoryCount holds a count for one category.
type CategoryCount struct {
	Category task.Category `json:"category"`
	Count    int           `json:"count"`
}

// Statistics is the aggregate overview of a task collection.
type Statistics struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Pending        int             `json:"pending"`
	CompletionRate int             `json:"completionRate"` // whole percent
	Overdue        int             `json:"overdue"`
	DueToday       int             `json:"dueToday"`
	TopCategory    task.Category   `json:"topCategory"`
	Categories     []CategoryCount `json:"categories"`
}

// Summarize computes statistics from all tasks.
func Summarize(tasks []task.Task, now time.Time) Statistics {
	today := date.Today(now)
	catMap := make(map[task.Category]int, len(task.Categories()))

	s := Statistics{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Completed++
		}
		if !t.Done && t.DueDate != "" && t.DueDate < today {
			s.Overdue++
		}
		if t.DueDate == today {
			s.DueToday++
		}
		catMap[t.Category]++
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	// Categories keep their declaration order; the first maximum wins the
	// top spot. Empty categories are omitted from the breakdown.
	s.TopCategory = task.CategoryOther
	maxCount := 0
	for _, c := range task.Categories() {
		n := catMap[c]
		if n > maxCount {
			maxCount = n
			s.TopCategory = c
		}
		if n > 0 {
			s.Categories = append(s.Categories, CategoryCount{Category: c, Count: n})
		}
	}
	return s
}
