package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
	"github.com/twiced-technology-gmbh/taskwatch/internal/notify"
	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// TickInterval is how often the time-proximity pass re-runs against the clock.
const TickInterval = time.Minute

// Alert is a push-style notification decided by a tick evaluation.
type Alert struct {
	Task        task.Task
	MinutesLeft int
}

// Title and body render the alert for delivery.
func (a Alert) Title() string { return "Task reminder" }

func (a Alert) Body() string {
	return fmt.Sprintf("%q starts in %d minutes (%s)", a.Task.Title, a.MinutesLeft, a.Task.StartTime)
}

// Scheduler evaluates task snapshots against wall-clock time. It decides when
// and what to alert; actual delivery goes through the Notifier, and permission
// handling lives with the caller via the granted flag.
type Scheduler struct {
	notifier notify.Notifier
	granted  bool
	now      func() time.Time
}

// New creates a Scheduler. A nil notifier discards alerts.
func New(notifier notify.Notifier, granted bool) *Scheduler {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Scheduler{notifier: notifier, granted: granted, now: time.Now}
}

// SetNow overrides the clock source (for testing).
func (s *Scheduler) SetNow(fn func() time.Time) { s.now = fn }

// SetGranted updates the notification permission flag.
func (s *Scheduler) SetGranted(granted bool) { s.granted = granted }

// Reminders runs both evaluation passes against the snapshot and returns the
// combined reminder list: due-soon entries first, then starting-soon. This is
// what the presentation layer shows; it carries no firing state.
func (s *Scheduler) Reminders(snap store.Snapshot) []Reminder {
	now := s.now()
	out := DueReminders(snap.Tasks, now)
	return append(out, ProximityReminders(snap.Tasks, now)...)
}

// Tick performs one edge-triggered pass: tasks whose start time is exactly 15
// or 5 minutes away get a push alert through the notifier, and tasks at the
// 5-minute mark are returned as fired so the caller can persist the flag.
// Without permission nothing is delivered and nothing is marked; the next
// granted tick may still catch the remaining mark.
func (s *Scheduler) Tick(snap store.Snapshot) (alerts []Alert, fired []int) {
	if !s.granted {
		return nil, nil
	}
	now := s.now()
	today := date.Today(now)
	current := date.NowMinute(now)

	for _, t := range snap.Tasks {
		delta, ok := startDelta(t, today, current)
		if !ok {
			continue
		}
		for _, lead := range alertLeads {
			if delta != lead {
				continue
			}
			a := Alert{Task: t, MinutesLeft: delta}
			alerts = append(alerts, a)
			s.notifier.Notify(a.Title(), a.Body())
			if delta == firingLead {
				fired = append(fired, t.ID)
			}
		}
	}
	return alerts, fired
}

// Run drives the periodic tick against a live store until the context is
// canceled. Fired tasks are committed back through the store so the
// suppression flag persists. The ticker is always stopped on teardown;
// callers restarting the scheduler (e.g. after a permission change) must
// cancel the previous run first to avoid stacking timers.
func (s *Scheduler) Run(ctx context.Context, st *store.Store, onAlert func(Alert)) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			alerts, fired := s.Tick(st.Snapshot())
			for _, a := range alerts {
				if onAlert != nil {
					onAlert(a)
				}
			}
			for _, id := range fired {
				// Persistence errors are non-fatal here; the worst outcome
				// is a repeated alert after a restart.
				_, _ = st.Apply(func(snap store.Snapshot) store.Snapshot {
					return snap.MarkReminderFired(id)
				})
			}
		}
	}
}
