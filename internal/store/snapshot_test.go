package store

import (
	"testing"

	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

func TestAddTask(t *testing.T) {
	snap := Snapshot{}
	snap = snap.AddTask("write report", "2026-09-01", "09:00", "11:00", task.CategoryWork)
	snap = snap.AddTask("buy groceries", "", "", "", task.CategoryPersonal)

	if len(snap.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", len(snap.Tasks))
	}
	first := snap.Tasks[0]
	if first.ID != 1 || first.Order != 0 || first.Done || first.ReminderFired {
		t.Errorf("first task = %+v, want id=1 order=0 done=false reminderFired=false", first)
	}
	if first.Subtasks == nil || len(first.Subtasks) != 0 {
		t.Errorf("new task subtasks = %v, want empty list", first.Subtasks)
	}
	second := snap.Tasks[1]
	if second.ID != 2 || second.Order != 1 {
		t.Errorf("second task = %+v, want id=2 order=1", second)
	}
}

func TestAddTaskIDsMonotonic(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{
		{ID: 3, Title: "a"},
		{ID: 7, Title: "b"},
	})
	snap = snap.AddTask("c", "", "", "", task.CategoryOther)
	if got := snap.Tasks[2].ID; got != 8 {
		t.Errorf("new task ID = %d, want 8", got)
	}
}

func TestToggleTaskCascadesToSubtasks(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{{
		ID:    1,
		Title: "parent",
		Subtasks: []task.Subtask{
			{ID: 1, Title: "a", Done: true},
			{ID: 2, Title: "b", Done: false},
		},
	}})

	snap = snap.ToggleTask(1)
	got := snap.Tasks[0]
	if !got.Done {
		t.Fatal("task Done = false after toggle, want true")
	}
	for _, st := range got.Subtasks {
		if !st.Done {
			t.Errorf("subtask #%d Done = false, want true (completion cascades down)", st.ID)
		}
	}

	// Un-completing the parent leaves subtasks untouched.
	snap = snap.ToggleTask(1)
	got = snap.Tasks[0]
	if got.Done {
		t.Fatal("task Done = true after second toggle, want false")
	}
	for _, st := range got.Subtasks {
		if !st.Done {
			t.Errorf("subtask #%d Done = false, want true (un-completing is asymmetric)", st.ID)
		}
	}
}

func TestToggleTaskUnknownIDIsNoop(t *testing.T) {
	snap := Snapshot{}.AddTask("a", "", "", "", task.CategoryOther)
	next := snap.ToggleTask(99)
	if next.Tasks[0].Done != snap.Tasks[0].Done {
		t.Error("ToggleTask with unknown ID changed state, want silent no-op")
	}
}

func TestToggleSubtaskDerivesParent(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{{
		ID:    1,
		Title: "parent",
		Subtasks: []task.Subtask{
			{ID: 1, Title: "a", Done: true},
			{ID: 2, Title: "b", Done: false},
		},
	}})

	// Completing the last incomplete subtask auto-completes the parent.
	snap = snap.ToggleSubtask(1, 2)
	if !snap.Tasks[0].Done {
		t.Error("parent Done = false after last subtask completed, want true")
	}

	// Un-completing any subtask un-completes the parent.
	snap = snap.ToggleSubtask(1, 1)
	if snap.Tasks[0].Done {
		t.Error("parent Done = true with an incomplete subtask, want false")
	}
}

func TestToggleSubtaskEmptyListLeavesParent(t *testing.T) {
	// A toggle naming a subtask on a task without subtasks must not derive
	// the parent's completion from the empty set.
	snap := Snapshot{}.Load([]task.Task{{ID: 1, Title: "done already", Done: true}})
	snap = snap.ToggleSubtask(1, 5)
	if !snap.Tasks[0].Done {
		t.Error("parent Done flipped by subtask toggle on empty list, want unchanged")
	}
}

func TestAddSubtaskIDsScopedToParent(t *testing.T) {
	snap := Snapshot{}.
		AddTask("a", "", "", "", task.CategoryOther).
		AddTask("b", "", "", "", task.CategoryOther)
	snap = snap.AddSubtask(1, "one")
	snap = snap.AddSubtask(1, "two")
	snap = snap.AddSubtask(2, "one")

	if got := snap.Tasks[0].Subtasks; len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("task 1 subtasks = %+v, want ids 1,2", got)
	}
	// Subtask identity is unique per parent only.
	if got := snap.Tasks[1].Subtasks; len(got) != 1 || got[0].ID != 1 {
		t.Errorf("task 2 subtasks = %+v, want single id 1", got)
	}
}

func TestDeleteSubtaskDoesNotDeriveParent(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{{
		ID: 1,
		Subtasks: []task.Subtask{
			{ID: 1, Done: true},
			{ID: 2, Done: false},
		},
	}})
	// Removing the only incomplete subtask leaves the remaining list fully
	// complete, but deletion never touches the parent flag.
	snap = snap.DeleteSubtask(1, 2)
	if snap.Tasks[0].Done {
		t.Error("parent Done = true after subtask deletion, want unchanged false")
	}
	if len(snap.Tasks[0].Subtasks) != 1 {
		t.Fatalf("len(Subtasks) = %d, want 1", len(snap.Tasks[0].Subtasks))
	}
}

func TestDeleteTask(t *testing.T) {
	snap := Snapshot{}.
		AddTask("a", "", "", "", task.CategoryOther).
		AddTask("b", "", "", "", task.CategoryOther)
	snap = snap.DeleteTask(1)
	if len(snap.Tasks) != 1 || snap.Tasks[0].ID != 2 {
		t.Fatalf("tasks after delete = %+v, want only #2", snap.Tasks)
	}
	// Unknown ID is a silent no-op.
	snap = snap.DeleteTask(42)
	if len(snap.Tasks) != 1 {
		t.Error("DeleteTask with unknown ID changed the collection")
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	snap := Snapshot{}.AddTask("old", "", "", "", task.CategoryOther)
	loaded := []task.Task{
		{ID: 10, Title: "restored", Order: 3},
	}
	snap = snap.Load(loaded)
	if len(snap.Tasks) != 1 || snap.Tasks[0].ID != 10 || snap.Tasks[0].Title != "restored" {
		t.Fatalf("snapshot after Load = %+v, want exactly the loaded records", snap.Tasks)
	}
}

func TestReorder(t *testing.T) {
	snap := Snapshot{}.
		AddTask("a", "", "", "", task.CategoryOther). // id 1, order 0
		AddTask("b", "", "", "", task.CategoryOther). // id 2, order 1
		AddTask("c", "", "", "", task.CategoryOther)  // id 3, order 2

	snap = snap.Reorder([]int{3, 1, 2})

	wantIDs := []int{3, 1, 2}
	for i, want := range wantIDs {
		if snap.Tasks[i].ID != want {
			t.Errorf("Tasks[%d].ID = %d, want %d", i, snap.Tasks[i].ID, want)
		}
		if snap.Tasks[i].Order != i {
			t.Errorf("Tasks[%d].Order = %d, want %d", i, snap.Tasks[i].Order, i)
		}
	}
}

func TestReorderPartialSequenceKeepsOutsideRanks(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{
		{ID: 1, Order: 0},
		{ID: 2, Order: 1},
		{ID: 3, Order: 2},
		{ID: 4, Order: 3},
	})

	// Reorder only a filtered subsequence {2,4}: they take ranks 0 and 1,
	// tasks 1 and 3 keep ranks 0 and 2 and interleave stably.
	snap = snap.Reorder([]int{4, 2})

	wantIDs := []int{1, 4, 2, 3}
	got := make([]int, len(snap.Tasks))
	for i, tk := range snap.Tasks {
		got[i] = tk.ID
	}
	for i, want := range wantIDs {
		if got[i] != want {
			t.Fatalf("order after partial reorder = %v, want %v", got, wantIDs)
		}
	}
}

func TestMarkReminderFired(t *testing.T) {
	snap := Snapshot{}.AddTask("a", "", "09:00", "", task.CategoryOther)
	snap = snap.MarkReminderFired(1)
	if !snap.Tasks[0].ReminderFired {
		t.Error("ReminderFired = false, want true")
	}
	if snap.Tasks[0].Done {
		t.Error("MarkReminderFired altered completion flag")
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	snap := Snapshot{}.Load([]task.Task{{
		ID:       1,
		Subtasks: []task.Subtask{{ID: 1, Done: false}},
	}})
	_ = snap.ToggleTask(1)
	_ = snap.ToggleSubtask(1, 1)
	_ = snap.MarkReminderFired(1)

	if snap.Tasks[0].Done || snap.Tasks[0].Subtasks[0].Done || snap.Tasks[0].ReminderFired {
		t.Errorf("receiver snapshot mutated: %+v", snap.Tasks[0])
	}
}
