// Package task defines the task and subtask records and their field rules.
package task

// Category is a task's closed-set category.
type Category string

// The fixed category set. New tasks default to CategoryOther.
const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories returns the category set in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther}
}

// CategoryNames returns the category set as plain strings.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// ParseCategory validates a category name from user input.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, true
		}
	}
	return "", false
}

// Task is a trackable item with optional scheduling attributes.
//
// DueDate is a YYYY-MM-DD string; StartTime and EndTime are HH:MM strings on
// the same calendar day as DueDate. The strings are stored raw: loaded data is
// trusted, and malformed values degrade to missing reminders or conflicts
// rather than errors. A start after the end is tolerated by the model.
type Task struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Done          bool      `json:"done"`
	DueDate       string    `json:"dueDate,omitempty"`
	StartTime     string    `json:"startTime,omitempty"`
	EndTime       string    `json:"endTime,omitempty"`
	Category      Category  `json:"category"`
	Subtasks      []Subtask `json:"subtasks"`
	Order         int       `json:"order,omitempty"`
	ReminderFired bool      `json:"reminderFired,omitempty"`
}

// Subtask is a child checklist item owned by exactly one task.
// Its ID is unique only within the parent's subtask list.
type Subtask struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	if t.Subtasks != nil {
		c.Subtasks = make([]Subtask, len(t.Subtasks))
		copy(c.Subtasks, t.Subtasks)
	}
	return c
}

// HasWindow reports whether the task has both a start and an end time set.
func (t Task) HasWindow() bool {
	return t.StartTime != "" && t.EndTime != ""
}

// AllSubtasksDone reports whether every subtask is complete.
// An empty list reports true; callers that derive parent completion must
// check for non-emptiness first.
func (t Task) AllSubtasksDone() bool {
	for _, st := range t.Subtasks {
		if !st.Done {
			return false
		}
	}
	return true
}
