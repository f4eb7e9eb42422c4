package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a list refresh.
type ReloadMsg struct{}

type errMsg struct{ err error }

// TickMsg drives the periodic reminder evaluation.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(schedule.TickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("237"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	reminderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("44"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	categoryColors = map[task.Category]lipgloss.Color{
		task.CategoryWork:     "33",
		task.CategoryPersonal: "135",
		task.CategoryStudy:    "226",
		task.CategoryHealth:   "42",
		task.CategoryOther:    "242",
	}

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

func categoryStyle(c task.Category) lipgloss.Style {
	if color, ok := categoryColors[c]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return dimStyle
}

// --- View rendering ---

func (m *Model) viewList() string {
	header := m.renderHeader()
	conflictLine := m.renderConflictLine()

	avail := m.height - m.chromeHeight()
	if avail < 1 {
		avail = 1
	}

	var rows []string
	if len(m.tasks) == 0 {
		rows = append(rows, dimStyle.Render("  (no tasks)"))
	}
	used := 0
	for i := m.scrollOff; i < len(m.tasks); i++ {
		t := m.tasks[i]
		h := m.rowHeight(t)
		if used+h > avail && used > 0 {
			rows = append(rows, dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(m.tasks)-i)))
			break
		}
		rows = append(rows, m.renderRow(t, i == m.cursor))
		if m.expanded[t.ID] {
			for _, st := range t.Subtasks {
				rows = append(rows, m.renderSubtaskRow(st))
			}
		}
		used += h
	}

	listView := strings.Join(rows, "\n")
	target := avail
	if actual := strings.Count(listView, "\n") + 1; actual < target {
		listView += strings.Repeat("\n", target-actual)
	}

	parts := []string{header, conflictLine, listView}
	for _, r := range m.reminders {
		parts = append(parts, m.renderReminder(r))
	}
	parts = append(parts, "", m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderHeader() string {
	label := fmt.Sprintf("taskwatch [%s]", m.filter)
	if m.category != "" {
		label += " / " + string(m.category)
	}
	return headerStyle.Width(m.width).Render(truncate(label, m.width-2))
}

func (m *Model) renderConflictLine() string {
	if len(m.conflicts) == 0 {
		return dimStyle.Render(" no schedule conflicts")
	}
	c := m.conflicts[0]
	line := fmt.Sprintf(" ! %d conflict(s): %q and %q", len(m.conflicts), c.TaskA.Title, c.TaskB.Title)
	if c.Overlap != "" {
		line += " (" + c.Overlap + ")"
	}
	return conflictStyle.Render(truncate(line, m.width))
}

func (m *Model) renderRow(t task.Task, selected bool) string {
	mark := "[ ]"
	if t.Done {
		mark = "[x]"
	}

	line := fmt.Sprintf(" %s #%-3d %s", mark, t.ID, t.Title)
	if len(t.Subtasks) > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Done {
				done++
			}
		}
		line += fmt.Sprintf(" (%d/%d)", done, len(t.Subtasks))
	}

	meta := ""
	if t.DueDate != "" {
		meta += " " + t.DueDate
	}
	if t.StartTime != "" {
		meta += " " + t.StartTime
		if t.EndTime != "" {
			meta += "-" + t.EndTime
		}
	}

	catLabel := " " + string(t.Category)

	width := m.width
	body := truncate(line, width-lipgloss.Width(meta)-lipgloss.Width(catLabel))

	switch {
	case selected:
		row := body + dimStyle.Render(meta) + categoryStyle(t.Category).Render(catLabel)
		return selectedStyle.Width(width).Render(row)
	case t.Done:
		return doneStyle.Render(body) + dimStyle.Render(meta) + categoryStyle(t.Category).Render(catLabel)
	default:
		return body + dimStyle.Render(meta) + categoryStyle(t.Category).Render(catLabel)
	}
}

func (m *Model) renderSubtaskRow(st task.Subtask) string {
	mark := "[ ]"
	if st.Done {
		mark = "[x]"
	}
	return dimStyle.Render(truncate(fmt.Sprintf("      %s %s", mark, st.Title), m.width))
}

func (m *Model) renderReminder(r schedule.Reminder) string {
	var line string
	if r.Kind == schedule.KindStartingSoon {
		line = fmt.Sprintf(" ⏰ %q starts %s", r.Task.Title, r.Lead)
	} else {
		line = fmt.Sprintf(" ⏰ %q is due %s", r.Task.Title, r.Lead)
	}
	return reminderStyle.Render(truncate(line, m.width))
}

func (m *Model) renderStatusBar() string {
	bell := "off"
	if m.granted {
		bell = "on"
	}
	status := fmt.Sprintf(" %d tasks | alerts:%s | space:toggle a:add d:del J/K:move f:filter c:cat N:alerts q:quit",
		len(m.tasks), bell)
	status = truncate(status, m.width)

	if m.err != nil {
		errStr := errorStyle.Render(truncate("Error: "+m.err.Error(), m.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}

	return statusBarStyle.Render(status)
}

func (m *Model) viewDeleteConfirm() string {
	content := errorStyle.Render("Delete task?") + "\n\n" +
		fmt.Sprintf("  #%d: %s", m.deleteID, m.deleteTitle) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (m *Model) viewAdd() string {
	content := headerStyle.Render("New task") + "\n\n" +
		m.input.View() + "\n\n" +
		dimStyle.Render("enter:save  esc:cancel")

	return dialogStyle.Render(content)
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := maxLen - 3 //nolint:mnd // room for "..."
	if target > len(runes) {
		target = len(runes)
	}
	// Trim runes from the end until the display width fits.
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
