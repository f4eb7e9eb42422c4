// Package schedule derives time-sensitive reminders from task snapshots.
package schedule

import (
	"fmt"
	"time"

	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// Kind distinguishes the two reminder flavors.
type Kind string

// Reminder kinds.
const (
	KindDueSoon      Kind = "due-soon"
	KindStartingSoon Kind = "starting-soon"
)

// proximityWindow is how far ahead of a start time a task stays on the
// "starting soon" list.
const proximityWindow = 30

// alertLeads are the exact minute marks at which push alerts fire.
var alertLeads = []int{15, 5}

// firingLead is the mark at which a task's reminder flag is set, making its
// push alert one-shot for the task's lifetime.
const firingLead = 5

// Reminder is a derived, short-lived notice about an approaching due date or
// start time. Reminders are regenerated on every evaluation pass; the only
// durable piece of state is the fired flag on the task itself.
type Reminder struct {
	Task task.Task `json:"task"`
	Kind Kind      `json:"kind"`
	Lead string    `json:"lead"`
}

// DueReminders returns a due-soon reminder for every incomplete task whose
// due date equals today or tomorrow at the evaluation instant. The pass is
// stateless and idempotent; it is safe to re-run on every snapshot change.
func DueReminders(tasks []task.Task, now time.Time) []Reminder {
	today := date.Today(now)
	tomorrow := date.Tomorrow(now)

	var out []Reminder
	for _, t := range tasks {
		if t.Done || t.DueDate == "" {
			continue
		}
		switch t.DueDate {
		case today:
			out = append(out, Reminder{Task: t, Kind: KindDueSoon, Lead: "today"})
		case tomorrow:
			out = append(out, Reminder{Task: t, Kind: KindDueSoon, Lead: "tomorrow"})
		}
	}
	return out
}

// ProximityReminders returns a starting-soon reminder for every incomplete,
// not-yet-fired task whose start time lies within the next proximityWindow
// minutes. The condition is level-triggered: a task stays on the list on
// every evaluation while it remains eligible. A task with a due date on a
// different calendar day is excluded; a task without a due date is not.
func ProximityReminders(tasks []task.Task, now time.Time) []Reminder {
	today := date.Today(now)
	current := date.NowMinute(now)

	var out []Reminder
	for _, t := range tasks {
		delta, ok := startDelta(t, today, current)
		if !ok {
			continue
		}
		if delta > 0 && delta <= proximityWindow {
			out = append(out, Reminder{
				Task: t,
				Kind: KindStartingSoon,
				Lead: fmt.Sprintf("in %d minutes", delta),
			})
		}
	}
	return out
}

// startDelta computes minutes until a task's start time, or ok=false when
// the task is ineligible for time-proximity evaluation.
func startDelta(t task.Task, today string, currentMinute int) (int, bool) {
	if t.Done || t.ReminderFired || t.StartTime == "" {
		return 0, false
	}
	if t.DueDate != "" && t.DueDate != today {
		return 0, false
	}
	start, ok := date.MinuteOfDay(t.StartTime)
	if !ok {
		return 0, false
	}
	return start - currentMinute, true
}
