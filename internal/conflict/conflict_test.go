package conflict

import (
	"testing"

	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

func timed(id int, due, start, end string, done bool) task.Task {
	return task.Task{ID: id, Title: "t", DueDate: due, StartTime: start, EndTime: end, Done: done}
}

func TestDetectOverlappingPair(t *testing.T) {
	// A 09:00-11:00 and B 10:00-12:00 on the same day: exactly one conflict, 1h.
	tasks := []task.Task{
		timed(1, "2026-09-01", "09:00", "11:00", false),
		timed(2, "2026-09-01", "10:00", "12:00", false),
	}
	got := Detect(tasks)
	if len(got) != 1 {
		t.Fatalf("len(conflicts) = %d, want 1 (symmetric pairs reported once)", len(got))
	}
	c := got[0]
	if c.TaskA.ID != 1 || c.TaskB.ID != 2 {
		t.Errorf("pair = (#%d, #%d), want (#1, #2) in scan order", c.TaskA.ID, c.TaskB.ID)
	}
	if c.Overlap != "1h" {
		t.Errorf("overlap = %q, want 1h", c.Overlap)
	}
}

func TestDetectBackToBackIsNoConflict(t *testing.T) {
	tasks := []task.Task{
		timed(1, "2026-09-01", "09:00", "10:00", false),
		timed(2, "2026-09-01", "10:00", "11:00", false),
	}
	if got := Detect(tasks); len(got) != 0 {
		t.Fatalf("conflicts = %v, want none for back-to-back windows", got)
	}
}

func TestDetectIgnoresIneligibleTasks(t *testing.T) {
	tasks := []task.Task{
		timed(1, "2026-09-01", "09:00", "11:00", false),
		timed(2, "2026-09-01", "09:30", "10:30", true), // completed
		{ID: 3, DueDate: "2026-09-01", StartTime: "09:30"},       // no end time
		timed(4, "", "09:00", "11:00", false),                    // no due date
		timed(5, "2026-09-02", "09:00", "11:00", false),          // different day
	}
	if got := Detect(tasks); len(got) != 0 {
		t.Fatalf("conflicts = %v, want none", got)
	}
}

func TestDetectMultipleOverlaps(t *testing.T) {
	// One long task overlapping two others yields two conflicts.
	tasks := []task.Task{
		timed(1, "2026-09-01", "08:00", "12:00", false),
		timed(2, "2026-09-01", "08:30", "09:00", false),
		timed(3, "2026-09-01", "11:00", "13:00", false),
	}
	got := Detect(tasks)
	if len(got) != 2 {
		t.Fatalf("len(conflicts) = %d, want 2", len(got))
	}
	if got[0].TaskB.ID != 2 || got[1].TaskB.ID != 3 {
		t.Errorf("pairs = (#%d,#%d),(#%d,#%d), want encounter order (1,2),(1,3)",
			got[0].TaskA.ID, got[0].TaskB.ID, got[1].TaskA.ID, got[1].TaskB.ID)
	}
	if got[0].Overlap != "30min" || got[1].Overlap != "1h" {
		t.Errorf("overlaps = %q,%q, want 30min,1h", got[0].Overlap, got[1].Overlap)
	}
}

func TestDetectOverlapWithHoursAndMinutes(t *testing.T) {
	tasks := []task.Task{
		timed(1, "2026-09-01", "09:00", "11:45", false),
		timed(2, "2026-09-01", "10:15", "12:00", false),
	}
	got := Detect(tasks)
	if len(got) != 1 || got[0].Overlap != "1h30min" {
		t.Fatalf("conflicts = %+v, want single 1h30min overlap", got)
	}
}

func TestDetectMalformedWindowZeroDuration(t *testing.T) {
	// An inverted window inside a wide neighbor satisfies the interval test
	// but computes a negative overlap: reported as a zero-duration conflict,
	// never rendered as "0min".
	tasks := []task.Task{
		timed(1, "2026-09-01", "10:00", "09:00", false),
		timed(2, "2026-09-01", "08:00", "11:00", false),
	}
	got := Detect(tasks)
	if len(got) != 1 {
		t.Fatalf("len(conflicts) = %d, want 1", len(got))
	}
	if got[0].Overlap != "" {
		t.Errorf("overlap = %q, want empty string for zero-duration edge case", got[0].Overlap)
	}
}

func TestDetectUnparseableTimesAreTolerated(t *testing.T) {
	tasks := []task.Task{
		timed(1, "2026-09-01", "morning", "11:00", false),
		timed(2, "2026-09-01", "09:00", "11:00", false),
	}
	if got := Detect(tasks); len(got) != 0 {
		t.Fatalf("conflicts = %v, want none for unparseable times", got)
	}
}
