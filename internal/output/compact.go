package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskwatch/internal/conflict"
	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
	"github.com/twiced-technology-gmbh/taskwatch/internal/view"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// TaskDetailCompact renders a single task with subtasks in compact format.
func TaskDetailCompact(w io.Writer, t task.Task) {
	fmt.Fprintln(w, formatTaskLine(t))
	for _, st := range t.Subtasks {
		mark := " "
		if st.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] #%d %s\n", mark, st.ID, st.Title)
	}
}

// ConflictCompact renders conflicts one per line.
func ConflictCompact(w io.Writer, conflicts []conflict.Conflict) {
	for _, c := range conflicts {
		line := "#" + strconv.Itoa(c.TaskA.ID) + " x #" + strconv.Itoa(c.TaskB.ID) +
			" " + c.TaskA.DueDate
		if c.Overlap != "" {
			line += " overlap:" + c.Overlap
		}
		fmt.Fprintln(w, line)
	}
}

// ReminderCompact renders reminders one per line.
func ReminderCompact(w io.Writer, reminders []schedule.Reminder) {
	for _, r := range reminders {
		fmt.Fprintf(w, "#%d [%s] %s %s\n", r.Task.ID, r.Kind, r.Task.Title, r.Lead)
	}
}

// StatsCompact renders statistics on two lines.
func StatsCompact(w io.Writer, s view.Statistics) {
	fmt.Fprintf(w, "total=%d completed=%d pending=%d rate=%d%% overdue=%d today=%d\n",
		s.Total, s.Completed, s.Pending, s.CompletionRate, s.Overdue, s.DueToday)

	if len(s.Categories) > 0 {
		parts := make([]string, 0, len(s.Categories))
		for _, cc := range s.Categories {
			parts = append(parts, string(cc.Category)+"="+strconv.Itoa(cc.Count))
		}
		fmt.Fprintln(w, "Categories: "+strings.Join(parts, " "))
	}
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(t task.Task) string {
	mark := " "
	if t.Done {
		mark = "x"
	}
	line := "#" + strconv.Itoa(t.ID) + " [" + mark + "] " + t.Title +
		" (" + string(t.Category) + ")"

	if t.DueDate != "" {
		line += " due:" + t.DueDate
	}
	if win := windowDisplay(t); win != "" {
		line += " time:" + win
	}
	if len(t.Subtasks) > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Done {
				done++
			}
		}
		line += " subs:" + strconv.Itoa(done) + "/" + strconv.Itoa(len(t.Subtasks))
	}

	return line
}
