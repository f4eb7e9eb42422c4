package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskwatch/internal/conflict"
	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
	"github.com/twiced-technology-gmbh/taskwatch/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

	// Category colors aligned with the TUI palette.
	categoryStyles = map[task.Category]lipgloss.Style{
		task.CategoryWork:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		task.CategoryPersonal: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		task.CategoryStudy:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		task.CategoryHealth:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		task.CategoryOther:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	warnStyle = lipgloss.NewStyle()
	categoryStyles = map[task.Category]lipgloss.Style{}
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	// Calculate column widths.
	const pad = 2
	idW, titleW, catW, dueW, timeW := 4, 7, 10, 12, 13
	for _, t := range tasks {
		idW = max(idW, len(strconv.Itoa(t.ID))+pad)
		titleW = max(titleW, min(len(t.Title)+pad, 50)) //nolint:mnd // max title column width
		catW = max(catW, len(t.Category)+pad)
	}

	header := fmt.Sprintf("%-*s %-4s %-*s %-*s %-*s %-*s %s",
		idW, "ID", "DONE", titleW, "TITLE", catW, "CATEGORY",
		dueW, "DUE", timeW, "TIME", "SUBTASKS")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, t := range tasks {
		title := t.Title
		const maxTitle = 48
		if len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}

		row := fmt.Sprintf("%-*d %s %s %s %s %s %s",
			idW, t.ID,
			padRight(doneMark(t.Done), 4),
			padRight(title, titleW),
			padRight(categoryValue(t.Category), catW),
			padRight(stringOrDash(t.DueDate), dueW),
			padRight(windowDisplay(t), timeW),
			subtaskDisplay(t))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single task with full detail, subtasks included.
func TaskDetail(w io.Writer, t task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.ID, t.Title)
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(titleLine))))

	printField(w, "Done", doneMark(t.Done))
	printField(w, "Category", categoryValue(t.Category))
	printField(w, "Due", stringOrDash(t.DueDate))
	printField(w, "Time", stringOrDash(windowDisplay(t)))
	if t.ReminderFired {
		printField(w, "Reminder", dimStyle.Render("already sent"))
	}

	if len(t.Subtasks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Subtasks"))
		for _, st := range t.Subtasks {
			fmt.Fprintf(w, "  %s #%d %s\n", doneMark(st.Done), st.ID, st.Title)
		}
	}
}

// ConflictTable renders detected schedule conflicts.
func ConflictTable(w io.Writer, conflicts []conflict.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No schedule conflicts.")
		return
	}

	for _, c := range conflicts {
		overlap := c.Overlap
		if overlap == "" {
			overlap = "overlapping"
		}
		fmt.Fprintf(w, "%s %q and %q on %s (%s)\n",
			warnStyle.Render("!"),
			c.TaskA.Title, c.TaskB.Title, c.TaskA.DueDate,
			warnStyle.Render(overlap))
	}
}

// ReminderTable renders upcoming reminders.
func ReminderTable(w io.Writer, reminders []schedule.Reminder) {
	if len(reminders) == 0 {
		fmt.Fprintln(w, "Nothing coming up.")
		return
	}

	for _, r := range reminders {
		switch r.Kind {
		case schedule.KindStartingSoon:
			fmt.Fprintf(w, "#%-4d %s starts %s\n", r.Task.ID, r.Task.Title, r.Lead)
		default:
			fmt.Fprintf(w, "#%-4d %s is due %s\n", r.Task.ID, r.Task.Title, r.Lead)
		}
	}
}

// StatsTable renders aggregate statistics as a small dashboard.
func StatsTable(w io.Writer, s view.Statistics) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render("Statistics"))
	printField(w, "Total", strconv.Itoa(s.Total))
	printField(w, "Completed", fmt.Sprintf("%d (%d%%)", s.Completed, s.CompletionRate))
	printField(w, "Pending", strconv.Itoa(s.Pending))
	printField(w, "Overdue", strconv.Itoa(s.Overdue))
	printField(w, "Due today", strconv.Itoa(s.DueToday))
	printField(w, "Top category", categoryValue(s.TopCategory))

	if len(s.Categories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %6s", "CATEGORY", "COUNT")))
		for _, cc := range s.Categories {
			const catColW = 12
			fmt.Fprintf(w, "%s %6d\n", padRight(categoryValue(cc.Category), catColW), cc.Count)
		}
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

func doneMark(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return "[ ]"
}

// windowDisplay returns "HH:MM-HH:MM", a single bound, or "".
func windowDisplay(t task.Task) string {
	switch {
	case t.StartTime != "" && t.EndTime != "":
		return t.StartTime + "-" + t.EndTime
	case t.StartTime != "":
		return t.StartTime + "-"
	case t.EndTime != "":
		return "-" + t.EndTime
	}
	return ""
}

func subtaskDisplay(t task.Task) string {
	if len(t.Subtasks) == 0 {
		return dimStyle.Render("--")
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Done {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(t.Subtasks))
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func stringOrDash(s string) string {
	if s == "" {
		return dimStyle.Render("--")
	}
	return s
}

// categoryValue renders a category name with its palette color.
func categoryValue(c task.Category) string {
	if st, ok := categoryStyles[c]; ok {
		return st.Render(string(c))
	}
	return string(c)
}
