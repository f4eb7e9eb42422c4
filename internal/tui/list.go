// Package tui implements the interactive terminal UI for taskwatch.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/taskwatch/internal/conflict"
	"github.com/twiced-technology-gmbh/taskwatch/internal/config"
	"github.com/twiced-technology-gmbh/taskwatch/internal/notify"
	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
	"github.com/twiced-technology-gmbh/taskwatch/internal/view"
)

// screen represents the current screen state.
type screen int

const (
	screenList screen = iota
	screenConfirmDelete
	screenAdd
)

// Key and layout constants.
const (
	keyEsc = "esc"

	listChrome  = 4 // header + conflict line + blank line + status bar
	errorChrome = 1 // extra line when error toast is displayed
)

// Model is the top-level bubbletea model.
type Model struct {
	cfg       *config.Config
	st        *store.Store
	scheduler *schedule.Scheduler
	granted   bool

	tasks     []task.Task // current projection
	conflicts []conflict.Conflict
	reminders []schedule.Reminder

	filter   view.StatusFilter
	category task.Category // empty = all categories

	cursor    int
	scrollOff int
	expanded  map[int]bool // task ID -> subtasks unfolded

	screen screen
	input  textinput.Model
	width  int
	height int
	err    error
	now    func() time.Time

	// Delete confirmation.
	deleteID    int
	deleteTitle string
}

// New creates a Model bound to an open store.
func New(cfg *config.Config, st *store.Store) *Model {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 200

	m := &Model{
		cfg:      cfg,
		st:       st,
		granted:  cfg.Notifications.Enabled,
		filter:   view.FilterAll,
		expanded: make(map[int]bool),
		input:    ti,
		now:      time.Now,
	}
	m.scheduler = schedule.New(notify.NewTerminal(), m.granted)
	m.refresh()
	return m
}

// SetNow overrides the clock (for testing).
func (m *Model) SetNow(fn func() time.Time) {
	m.now = fn
	m.scheduler.SetNow(fn)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ReloadMsg:
		if err := m.st.Reload(); err != nil {
			m.err = err
		} else {
			m.refresh()
		}
		return m, nil
	case TickMsg:
		m.runScheduler()
		return m, tickCmd()
	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.screen {
	case screenConfirmDelete:
		return m.viewDeleteConfirm()
	case screenAdd:
		return m.viewAdd()
	default:
		return m.viewList()
	}
}

// refresh rebuilds the projection, conflicts, and reminder panel from the
// store snapshot.
func (m *Model) refresh() {
	snap := m.st.Snapshot()
	now := m.now()
	m.tasks = view.Apply(snap.Tasks, view.Options{Status: m.filter, Category: m.category}, now)
	m.conflicts = conflict.Detect(snap.Tasks)
	m.reminders = m.scheduler.Reminders(snap)
	m.clampCursor()
}

// runScheduler performs one reminder evaluation and persists fired flags.
func (m *Model) runScheduler() {
	snap := m.st.Snapshot()
	_, fired := m.scheduler.Tick(snap)
	for _, id := range fired {
		if _, err := m.st.Apply(func(s store.Snapshot) store.Snapshot {
			return s.MarkReminderFired(id)
		}); err != nil {
			m.err = err
		}
	}
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return m, tea.Quit
	}

	switch m.screen {
	case screenList:
		return m.handleListKey(msg)
	case screenConfirmDelete:
		return m.handleDeleteKey(msg)
	case screenAdd:
		return m.handleAddKey(msg)
	}

	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", keyEsc:
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case " ":
		m.toggleSelected()
	case "enter":
		if t := m.selectedTask(); t != nil && len(t.Subtasks) > 0 {
			m.expanded[t.ID] = !m.expanded[t.ID]
		}
	case "a":
		m.screen = screenAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "d":
		if t := m.selectedTask(); t != nil {
			m.deleteID = t.ID
			m.deleteTitle = t.Title
			m.screen = screenConfirmDelete
		}
	case "J":
		m.moveSelected(1)
	case "K":
		m.moveSelected(-1)
	case "f":
		m.cycleFilter()
	case "c":
		m.cycleCategory()
	case "N":
		m.toggleNotifications()
	}
	return m, nil
}

func (m *Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.apply(func(s store.Snapshot) store.Snapshot {
			return s.DeleteTask(m.deleteID)
		})
		store.LogMutation(m.cfg.Dir(), "delete", m.deleteID, m.deleteTitle)
		m.screen = screenList
	case "n", "N", keyEsc, "q":
		m.screen = screenList
	}
	return m, nil
}

func (m *Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		m.screen = screenList
		m.input.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title != "" {
			cat, _ := task.ParseCategory(m.cfg.DefaultCategory)
			m.apply(func(s store.Snapshot) store.Snapshot {
				return s.AddTask(title, "", "", "", cat)
			})
			store.LogMutation(m.cfg.Dir(), "add", 0, title)
		}
		m.screen = screenList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply commits a mutation and rebuilds the projection.
func (m *Model) apply(op func(store.Snapshot) store.Snapshot) {
	if _, err := m.st.Apply(op); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.refresh()
}

func (m *Model) toggleSelected() {
	t := m.selectedTask()
	if t == nil {
		return
	}
	id := t.ID
	m.apply(func(s store.Snapshot) store.Snapshot {
		return s.ToggleTask(id)
	})
	store.LogMutation(m.cfg.Dir(), "toggle", id, "")
}

// moveSelected swaps the selected task with its neighbor in the current
// projection and commits the full sequence as the new order.
func (m *Model) moveSelected(delta int) {
	target := m.cursor + delta
	if m.cursor < 0 || m.cursor >= len(m.tasks) || target < 0 || target >= len(m.tasks) {
		return
	}

	ids := make([]int, len(m.tasks))
	for i, t := range m.tasks {
		ids[i] = t.ID
	}
	ids[m.cursor], ids[target] = ids[target], ids[m.cursor]

	m.apply(func(s store.Snapshot) store.Snapshot {
		return s.Reorder(ids)
	})
	m.cursor = target
	m.ensureVisible()
}

func (m *Model) cycleFilter() {
	filters := view.ValidStatusFilters()
	for i, f := range filters {
		if f == string(m.filter) {
			m.filter = view.StatusFilter(filters[(i+1)%len(filters)])
			break
		}
	}
	m.cursor = 0
	m.scrollOff = 0
	m.refresh()
}

func (m *Model) cycleCategory() {
	cats := task.Categories()
	if m.category == "" {
		m.category = cats[0]
	} else {
		next := task.Category("")
		for i, c := range cats {
			if c == m.category && i < len(cats)-1 {
				next = cats[i+1]
				break
			}
		}
		m.category = next // wraps back to "all"
	}
	m.cursor = 0
	m.scrollOff = 0
	m.refresh()
}

func (m *Model) toggleNotifications() {
	m.granted = !m.granted
	m.scheduler.SetGranted(m.granted)
	m.cfg.Notifications.Enabled = m.granted
	if err := m.cfg.Save(); err != nil {
		m.err = err
	}
}

func (m *Model) selectedTask() *task.Task {
	if m.cursor >= 0 && m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

func (m *Model) clampCursor() {
	if len(m.tasks) == 0 {
		m.cursor = 0
		m.scrollOff = 0
		return
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	m.ensureVisible()
}

func (m *Model) chromeHeight() int {
	h := listChrome + len(m.reminders)
	if m.err != nil {
		h += errorChrome
	}
	return h
}

// ensureVisible adjusts the scroll offset so the cursor's row is on screen.
// Expanded subtask lines count against the budget.
func (m *Model) ensureVisible() {
	avail := m.height - m.chromeHeight()
	if avail < 1 {
		avail = 1
	}

	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
		return
	}

	for {
		used := 0
		last := m.scrollOff - 1
		for i := m.scrollOff; i < len(m.tasks); i++ {
			used += m.rowHeight(m.tasks[i])
			if used > avail {
				break
			}
			last = i
		}
		if m.cursor <= last || m.scrollOff >= m.cursor {
			return
		}
		m.scrollOff++
	}
}

func (m *Model) rowHeight(t task.Task) int {
	if m.expanded[t.ID] {
		return 1 + len(t.Subtasks)
	}
	return 1
}
