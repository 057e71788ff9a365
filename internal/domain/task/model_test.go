package task_test

import (
	"testing"

	"crudtask/internal/domain/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: "1", Title: "Quarter report", Description: "Finance numbers", Status: task.StatusPending, UserID: "u1"},
		{ID: "2", Title: "Physics homework", Description: "Chapter 4", Status: task.StatusCompleted, UserID: "u1"},
		{ID: "3", Title: "Essay draft", Description: "History of Rome", Status: task.StatusInProgress, UserID: "u2"},
		{ID: "4", Title: "Review notes", Description: "", Status: task.StatusCompleted, UserID: "u1"},
	}
}

// TestFilter tests status filtering and substring search.
func TestFilter(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		name    string
		state   task.TableState
		wantIDs []string
	}{
		{"identity on empty state", task.TableState{Q: "", Filter: task.FilterAll}, []string{"1", "2", "3", "4"}},
		{"pending only", task.TableState{Filter: task.FilterPending}, []string{"1"}},
		{"completed only", task.TableState{Filter: task.FilterCompleted}, []string{"2", "4"}},
		{"query matches title case-insensitively", task.TableState{Q: "PHYSICS", Filter: task.FilterAll}, []string{"2"}},
		{"query matches description", task.TableState{Q: "rome", Filter: task.FilterAll}, []string{"3"}},
		{"status then query", task.TableState{Q: "notes", Filter: task.FilterCompleted}, []string{"4"}},
		{"query trimmed", task.TableState{Q: "  essay  ", Filter: task.FilterAll}, []string{"3"}},
		{"no matches", task.TableState{Q: "zzz", Filter: task.FilterAll}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.Filter(tasks, tt.state)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d tasks, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if string(got[i].ID) != want {
					t.Errorf("Filter()[%d].ID = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

// TestFilter_DoesNotMutateInput verifies the input slice survives filtering.
func TestFilter_DoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	task.Filter(tasks, task.TableState{Q: "physics", Filter: task.FilterCompleted})
	for i, want := range []string{"1", "2", "3", "4"} {
		if string(tasks[i].ID) != want {
			t.Fatalf("input mutated at %d: got %s, want %s", i, tasks[i].ID, want)
		}
	}
}

// TestComputeStats tests stat counting and progress rounding.
func TestComputeStats(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		got := task.ComputeStats(nil)
		want := task.Stats{Total: 0, Completed: 0, Pending: 0, Progress: 0}
		if got != want {
			t.Errorf("ComputeStats(nil) = %+v, want %+v", got, want)
		}
	})

	t.Run("two of four completed", func(t *testing.T) {
		got := task.ComputeStats(sampleTasks())
		if got.Total != 4 || got.Completed != 2 || got.Pending != 1 {
			t.Errorf("ComputeStats() = %+v", got)
		}
		if got.Progress != 50 {
			t.Errorf("Progress = %d, want 50", got.Progress)
		}
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusCompleted},
			{Status: task.StatusPending},
			{Status: task.StatusPending},
		}
		if got := task.ComputeStats(tasks); got.Progress != 33 {
			t.Errorf("Progress = %d, want 33", got.Progress)
		}
	})
}

// TestSortByCreatedAtDesc tests recency ordering with a missing timestamp.
func TestSortByCreatedAtDesc(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", CreatedAt: "2024-01-01"},
		{ID: "b", CreatedAt: "2024-03-01"},
		{ID: "c"},
	}

	got := task.SortByCreatedAtDesc(tasks)
	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if string(got[i].ID) != want {
			t.Errorf("sorted[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}

	// Unparseable timestamps also sort last.
	tasks = append(tasks, task.Task{ID: "d", CreatedAt: "not a date"})
	got = task.SortByCreatedAtDesc(tasks)
	last := got[len(got)-1]
	if last.ID != "c" && last.ID != "d" {
		t.Errorf("unparseable timestamp should sort last, got order ending in %s", last.ID)
	}

	// RFC 3339 stamps order correctly too.
	got = task.SortByCreatedAtDesc([]task.Task{
		{ID: "x", CreatedAt: "2024-05-01T10:00:00Z"},
		{ID: "y", CreatedAt: "2024-05-01T12:00:00Z"},
	})
	if got[0].ID != "y" {
		t.Errorf("sorted[0].ID = %s, want y", got[0].ID)
	}
}

// TestTask_OwnedBy tests string-normalized ownership comparison.
func TestTask_OwnedBy(t *testing.T) {
	tk := task.Task{UserID: "3"}
	if !tk.OwnedBy("3") {
		t.Error("OwnedBy(\"3\") = false, want true")
	}
	if tk.OwnedBy("4") {
		t.Error("OwnedBy(\"4\") = true, want false")
	}
}

// TestTask_Validate tests task validation.
func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    task.Task
		wantErr error
	}{
		{"valid", task.Task{Title: "T", Status: task.StatusPending}, nil},
		{"empty title", task.Task{Title: "  ", Status: task.StatusPending}, task.ErrEmptyTitle},
		{"bad status", task.Task{Title: "T", Status: "done"}, task.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
