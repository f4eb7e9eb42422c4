// Package conflict detects overlapping time windows between tasks.
package conflict

import (
	"github.com/twiced-technology-gmbh/taskwatch/internal/date"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// Conflict is a derived pairwise overlap between two tasks scheduled on the
// same day. It is never stored; detection runs fresh against each snapshot.
type Conflict struct {
	TaskA   task.Task `json:"taskA"`
	TaskB   task.Task `json:"taskB"`
	Overlap string    `json:"overlap"`
	Minutes int       `json:"minutes"`
}

// Detect returns every conflicting pair in the given tasks, in encounter
// order of the pairwise scan (task order, i<j). Only incomplete tasks with a
// due date and a full start/end window participate. Two tasks conflict when
// their windows strictly overlap on the same due date: a task ending exactly
// when another starts is not a conflict.
//
// A malformed window (start after end) can still satisfy the interval test
// against a wide enough neighbor; such pairs are reported as zero-duration
// conflicts with an empty overlap label.
func Detect(tasks []task.Task) []Conflict {
	var eligible []task.Task
	for _, t := range tasks {
		if !t.Done && t.DueDate != "" && t.HasWindow() {
			eligible = append(eligible, t)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			a, b := eligible[i], eligible[j]
			// Same calendar day by exact string equality.
			if a.DueDate != b.DueDate {
				continue
			}
			minutes, ok := overlapMinutes(a, b)
			if !ok {
				continue
			}
			conflicts = append(conflicts, Conflict{
				TaskA:   a,
				TaskB:   b,
				Overlap: date.FormatOverlap(minutes),
				Minutes: minutes,
			})
		}
	}
	return conflicts
}

// overlapMinutes reports whether two windows strictly overlap and, if so,
// the overlap duration in minutes (possibly non-positive for malformed
// windows). Unparseable times disqualify the pair.
func overlapMinutes(a, b task.Task) (int, bool) {
	startA, ok := date.MinuteOfDay(a.StartTime)
	if !ok {
		return 0, false
	}
	endA, ok := date.MinuteOfDay(a.EndTime)
	if !ok {
		return 0, false
	}
	startB, ok := date.MinuteOfDay(b.StartTime)
	if !ok {
		return 0, false
	}
	endB, ok := date.MinuteOfDay(b.EndTime)
	if !ok {
		return 0, false
	}

	if startA < endB && startB < endA {
		return min(endA, endB) - max(startA, startB), true
	}
	return 0, false
}
