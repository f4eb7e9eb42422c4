// Package store holds the task collection and applies commands to it.
//
// A Snapshot is the full task collection at a point in time. Every operation
// takes the receiver snapshot and returns a fresh one; nothing mutates in
// place. Operations are total: an ID that matches no task is a silent no-op,
// never an error. Callers cannot distinguish "not found" from "already in
// the desired state", which is an accepted trade-off for a single-user tool.
package store

import (
	"sort"

	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

// Snapshot is an immutable view of the task collection.
type Snapshot struct {
	Tasks []task.Task
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s.Tasks == nil {
		return Snapshot{}
	}
	tasks := make([]task.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = t.Clone()
	}
	return Snapshot{Tasks: tasks}
}

// Find returns the task with the given ID.
func (s Snapshot) Find(id int) (task.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return task.Task{}, false
}

// nextID returns the next task identity. IDs are assigned monotonically
// above the current maximum and stay stable for the task's lifetime.
func (s Snapshot) nextID() int {
	max := 0
	for _, t := range s.Tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// nextSubtaskID returns the next subtask identity within one parent's scope.
func nextSubtaskID(t task.Task) int {
	max := 0
	for _, st := range t.Subtasks {
		if st.ID > max {
			max = st.ID
		}
	}
	return max + 1
}

// AddTask appends a new task. The caller is expected to have filtered blank
// titles already; the store does not re-validate. The new task's display
// order is the current task count, its subtask list is empty, and its
// reminder flag is clear.
func (s Snapshot) AddTask(title, dueDate, startTime, endTime string, category task.Category) Snapshot {
	next := s.Clone()
	next.Tasks = append(next.Tasks, task.Task{
		ID:        next.nextID(),
		Title:     title,
		DueDate:   dueDate,
		StartTime: startTime,
		EndTime:   endTime,
		Category:  category,
		Subtasks:  []task.Subtask{},
		Order:     len(next.Tasks),
	})
	return next
}

// ToggleTask flips a task's completion flag. Completing a task forces every
// subtask complete; un-completing leaves subtasks unchanged.
func (s Snapshot) ToggleTask(id int) Snapshot {
	next := s.Clone()
	for i := range next.Tasks {
		if next.Tasks[i].ID != id {
			continue
		}
		done := !next.Tasks[i].Done
		next.Tasks[i].Done = done
		if done {
			for j := range next.Tasks[i].Subtasks {
				next.Tasks[i].Subtasks[j].Done = true
			}
		}
		break
	}
	return next
}

// DeleteTask removes a task and, with it, every subtask it owns.
func (s Snapshot) DeleteTask(id int) Snapshot {
	next := s.Clone()
	tasks := next.Tasks[:0]
	for _, t := range next.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	next.Tasks = tasks
	return next
}

// Load replaces the snapshot wholesale. Used for restoring persisted state;
// the input is trusted and not validated.
func (s Snapshot) Load(tasks []task.Task) Snapshot {
	return Snapshot{Tasks: tasks}.Clone()
}

// AddSubtask appends an incomplete subtask to the named task.
func (s Snapshot) AddSubtask(taskID int, title string) Snapshot {
	next := s.Clone()
	for i := range next.Tasks {
		if next.Tasks[i].ID != taskID {
			continue
		}
		next.Tasks[i].Subtasks = append(next.Tasks[i].Subtasks, task.Subtask{
			ID:    nextSubtaskID(next.Tasks[i]),
			Title: title,
		})
		break
	}
	return next
}

// ToggleSubtask flips a subtask's completion flag, then re-derives the
// parent's: a non-empty, fully complete list completes the parent; a
// non-empty, partially complete list un-completes it. An empty list leaves
// the parent untouched.
func (s Snapshot) ToggleSubtask(taskID, subtaskID int) Snapshot {
	next := s.Clone()
	for i := range next.Tasks {
		t := &next.Tasks[i]
		if t.ID != taskID {
			continue
		}
		for j := range t.Subtasks {
			if t.Subtasks[j].ID == subtaskID {
				t.Subtasks[j].Done = !t.Subtasks[j].Done
				break
			}
		}
		if len(t.Subtasks) > 0 {
			t.Done = t.AllSubtasksDone()
		}
		break
	}
	return next
}

// DeleteSubtask removes a subtask. Deletion is not a completion-affecting
// event: the parent's flag is left as-is even if the last incomplete
// subtask was removed.
func (s Snapshot) DeleteSubtask(taskID, subtaskID int) Snapshot {
	next := s.Clone()
	for i := range next.Tasks {
		t := &next.Tasks[i]
		if t.ID != taskID {
			continue
		}
		subs := t.Subtasks[:0]
		for _, st := range t.Subtasks {
			if st.ID != subtaskID {
				subs = append(subs, st)
			}
		}
		t.Subtasks = subs
		break
	}
	return next
}

// Reorder replaces display-order ranks in one atomic step. Tasks named in
// orderedIDs take their index in that sequence as their rank; tasks outside
// the sequence keep their previous ranks. The whole collection is then
// stably re-sorted by rank, so unmatched tasks interleave by their original
// rank values and ties preserve prior order. Unknown IDs are ignored.
func (s Snapshot) Reorder(orderedIDs []int) Snapshot {
	next := s.Clone()
	rank := make(map[int]int, len(orderedIDs))
	for i, id := range orderedIDs {
		rank[id] = i
	}
	for i := range next.Tasks {
		if r, ok := rank[next.Tasks[i].ID]; ok {
			next.Tasks[i].Order = r
		}
	}
	sort.SliceStable(next.Tasks, func(i, j int) bool {
		return next.Tasks[i].Order < next.Tasks[j].Order
	})
	return next
}

// MarkReminderFired sets a task's reminder-fired flag, suppressing any
// further start-time push alerts for that task's lifetime.
func (s Snapshot) MarkReminderFired(id int) Snapshot {
	next := s.Clone()
	for i := range next.Tasks {
		if next.Tasks[i].ID == id {
			next.Tasks[i].ReminderFired = true
			break
		}
	}
	return next
}
