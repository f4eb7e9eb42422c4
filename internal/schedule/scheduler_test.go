package schedule

import (
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// recorder counts delivered notifications.
type recorder struct {
	titles []string
	bodies []string
}

func (r *recorder) Notify(title, body string) {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
}

func at(day string, hour, minute int) time.Time {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDueRemindersTodayAndTomorrow(t *testing.T) {
	now := at("2026-09-01", 8, 0)
	tasks := []task.Task{
		{ID: 1, DueDate: "2026-09-01"},
		{ID: 2, DueDate: "2026-09-02"},
		{ID: 3, DueDate: "2026-09-03"},             // too far out
		{ID: 4, DueDate: "2026-09-01", Done: true}, // completed
		{ID: 5},                                    // no due date
	}

	got := DueReminders(tasks, now)
	if len(got) != 2 {
		t.Fatalf("len(reminders) = %d, want 2", len(got))
	}
	if got[0].Task.ID != 1 || got[0].Lead != "today" {
		t.Errorf("first = {#%d %q}, want {#1 today}", got[0].Task.ID, got[0].Lead)
	}
	if got[1].Task.ID != 2 || got[1].Lead != "tomorrow" {
		t.Errorf("second = {#%d %q}, want {#2 tomorrow}", got[1].Task.ID, got[1].Lead)
	}
	for _, r := range got {
		if r.Kind != KindDueSoon {
			t.Errorf("kind = %q, want %q", r.Kind, KindDueSoon)
		}
	}
}

func TestDueRemindersIdempotent(t *testing.T) {
	now := at("2026-09-01", 8, 0)
	tasks := []task.Task{{ID: 1, DueDate: "2026-09-01"}}
	first := DueReminders(tasks, now)
	second := DueReminders(tasks, now)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("re-running the due pass changed results: %d then %d", len(first), len(second))
	}
}

func TestProximityRemindersLevelTriggered(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, StartTime: "10:00", DueDate: "2026-09-01"},
		{ID: 2, StartTime: "10:00"},                                      // no due date: still eligible
		{ID: 3, StartTime: "10:00", DueDate: "2026-09-02"},               // other day
		{ID: 4, StartTime: "10:00", DueDate: "2026-09-01", Done: true},   // completed
		{ID: 5, StartTime: "10:00", DueDate: "2026-09-01", ReminderFired: true},
		{ID: 6, StartTime: "09:20", DueDate: "2026-09-01"},               // already started
		{ID: 7, StartTime: "11:00", DueDate: "2026-09-01"},               // beyond 30 minutes
	}

	now := at("2026-09-01", 9, 40) // 20 minutes before 10:00
	got := ProximityReminders(tasks, now)
	if len(got) != 2 {
		t.Fatalf("len(reminders) = %d, want 2 (tasks 1 and 2)", len(got))
	}
	if got[0].Task.ID != 1 || got[1].Task.ID != 2 {
		t.Errorf("tasks = #%d,#%d, want #1,#2", got[0].Task.ID, got[1].Task.ID)
	}
	if got[0].Lead != "in 20 minutes" {
		t.Errorf("lead = %q, want %q", got[0].Lead, "in 20 minutes")
	}

	// Level-triggered: the same task is re-offered on the next evaluation
	// while it remains eligible.
	again := ProximityReminders(tasks, at("2026-09-01", 9, 41))
	if len(again) != 2 {
		t.Errorf("second evaluation len = %d, want 2", len(again))
	}

	// The boundary is exclusive at 0 and inclusive at 30.
	if got := ProximityReminders(tasks[:1], at("2026-09-01", 10, 0)); len(got) != 0 {
		t.Errorf("delta=0 produced %d reminders, want 0", len(got))
	}
	if got := ProximityReminders(tasks[:1], at("2026-09-01", 9, 30)); len(got) != 1 {
		t.Errorf("delta=30 produced %d reminders, want 1", len(got))
	}
}

func TestTickAlertsOnceAtEachMark(t *testing.T) {
	rec := &recorder{}
	s := New(rec, true)

	snap := store.Snapshot{}.Load([]task.Task{
		{ID: 1, Title: "standup", StartTime: "10:00", DueDate: "2026-09-01"},
	})

	// Simulate the minute ticks crossing delta 15, then 5, then 0.
	marks := []struct {
		minute    int
		wantAlert bool
		wantFired bool
	}{
		{16, false, false},
		{15, true, false},
		{14, false, false},
		{5, true, true},
		{0, false, false},
	}

	totalAlerts := 0
	for _, m := range marks {
		s.SetNow(fixedClock(at("2026-09-01", 10, 0).Add(-time.Duration(m.minute) * time.Minute)))

		alerts, fired := s.Tick(snap)
		if m.wantAlert != (len(alerts) == 1) {
			t.Fatalf("delta=%d: alerts = %d, want alert=%v", m.minute, len(alerts), m.wantAlert)
		}
		if m.wantFired != (len(fired) == 1) {
			t.Fatalf("delta=%d: fired = %v, want fired=%v", m.minute, fired, m.wantFired)
		}
		totalAlerts += len(alerts)
		for _, id := range fired {
			snap = snap.MarkReminderFired(id)
		}
	}

	if totalAlerts != 2 {
		t.Errorf("total alerts = %d, want exactly 2 (at 15 and 5)", totalAlerts)
	}
	if len(rec.titles) != 2 {
		t.Errorf("delivered notifications = %d, want 2", len(rec.titles))
	}
	if !snap.Tasks[0].ReminderFired {
		t.Error("ReminderFired = false after the 5-minute mark, want true")
	}

	// The flag suppresses every further evaluation for this task's lifetime.
	s.SetNow(fixedClock(at("2026-09-01", 9, 45)))
	if alerts, _ := s.Tick(snap); len(alerts) != 0 {
		t.Errorf("alerts after fired flag = %d, want 0", len(alerts))
	}
	if got := ProximityReminders(snap.Tasks, at("2026-09-01", 9, 45)); len(got) != 0 {
		t.Errorf("proximity reminders after fired flag = %d, want 0", len(got))
	}
}

func TestTickWithoutPermissionIsSilent(t *testing.T) {
	rec := &recorder{}
	s := New(rec, false)
	s.SetNow(fixedClock(at("2026-09-01", 9, 55)))

	snap := store.Snapshot{}.Load([]task.Task{
		{ID: 1, Title: "standup", StartTime: "10:00"},
	})

	alerts, fired := s.Tick(snap)
	if len(alerts) != 0 || len(fired) != 0 || len(rec.titles) != 0 {
		t.Errorf("ungranted tick delivered alerts=%d fired=%v notified=%d, want all zero",
			len(alerts), fired, len(rec.titles))
	}
}

func TestTickIgnoresOtherDays(t *testing.T) {
	s := New(nil, true)
	s.SetNow(fixedClock(at("2026-09-01", 9, 45)))

	snap := store.Snapshot{}.Load([]task.Task{
		{ID: 1, StartTime: "10:00", DueDate: "2026-09-02"},
	})
	if alerts, _ := s.Tick(snap); len(alerts) != 0 {
		t.Errorf("alerts = %d, want 0 for a task due another day", len(alerts))
	}
}
