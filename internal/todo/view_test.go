package todo_test

import (
	"math"
	"testing"
	"time"

	"voice-todo/internal/model"
	"voice-todo/internal/todo"
)

func ptr(t time.Time) *time.Time { return &t }

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(t *testing.T, got []model.Task, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestDeriveViewSort(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "a", Pinned: false, DueDate: ptr(now.Add(2 * time.Hour))},
		{ID: "b", Pinned: true},
		{ID: "c", Pinned: false, DueDate: ptr(now.Add(time.Hour))},
	}

	got := todo.DeriveView(tasks, todo.FilterAll, "")
	equalIDs(t, got, "b", "c", "a")

	// Input must stay untouched.
	equalIDs(t, tasks, "a", "b", "c")
}

func TestDeriveViewKeepsOrderWithoutDueDates(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "1"},
		{ID: "2", DueDate: ptr(now.Add(3 * time.Hour))},
		{ID: "3"},
		{ID: "4", DueDate: ptr(now.Add(time.Hour))},
		{ID: "5", Pinned: true},
		{ID: "6", Pinned: true, DueDate: ptr(now.Add(5 * time.Hour))},
		{ID: "7", Pinned: true, DueDate: ptr(now.Add(4 * time.Hour))},
	}

	got := todo.DeriveView(tasks, todo.FilterAll, "All")
	equalIDs(t, got, "5", "7", "6", "1", "4", "3", "2")
}

func TestDeriveViewFilters(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "1", Done: true, Category: "Work", DueDate: ptr(now.Add(2 * time.Hour))},
		{ID: "2", Pinned: true, Category: "General"},
		{ID: "3", Done: true, Pinned: true, Category: "Work"},
		{ID: "4", Category: "Shopping"},
		{ID: "5", Done: true, Category: "General", DueDate: ptr(now.Add(time.Hour))},
	}

	tests := []struct {
		name     string
		filter   todo.Filter
		category string
		want     []string
	}{
		{name: "All", filter: todo.FilterAll, want: []string{"2", "3", "5", "4", "1"}},
		{name: "Completed", filter: todo.FilterCompleted, want: []string{"3", "5", "1"}},
		{name: "Incomplete", filter: todo.FilterIncomplete, want: []string{"2", "4"}},
		{name: "Pinned", filter: todo.FilterPinned, want: []string{"2", "3"}},
		{name: "Category Work", filter: todo.FilterAll, category: "Work", want: []string{"3", "1"}},
		{name: "Category All keyword", filter: todo.FilterCompleted, category: "All", want: []string{"3", "5", "1"}},
		{name: "Completed General", filter: todo.FilterCompleted, category: "General", want: []string{"5"}},
		{name: "Unknown filter passes", filter: todo.Filter("Someday"), want: []string{"2", "3", "5", "4", "1"}},
		{name: "Unknown category", filter: todo.FilterAll, category: "Garden", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := todo.DeriveView(tasks, tt.filter, tt.category)
			equalIDs(t, got, tt.want...)
		})
	}
}

func TestDeriveViewCompletedHasOnlyDone(t *testing.T) {
	tasks := []model.Task{{ID: "1", Done: true}, {ID: "2"}, {ID: "3", Done: true, Pinned: true}}
	for _, task := range todo.DeriveView(tasks, todo.FilterCompleted, "") {
		if !task.Done {
			t.Fatalf("task %s is not done", task.ID)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := todo.Progress(nil); got != 0 {
		t.Fatalf("Progress(nil) = %v, want 0", got)
	}
	if got := todo.Progress([]model.Task{}); got != 0 {
		t.Fatalf("Progress([]) = %v, want 0", got)
	}

	tasks := []model.Task{{Done: true}, {}, {}, {Done: true}}
	if got := todo.Progress(tasks); got != 50 {
		t.Fatalf("Progress = %v, want 50", got)
	}

	stats := todo.ComputeStats([]model.Task{{Done: true}, {}, {}})
	if stats.Done != 1 || stats.Total != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if want := 100.0 / 3.0; math.Abs(stats.Progress-want) > 1e-9 {
		t.Fatalf("Progress = %v, want %v", stats.Progress, want)
	}
}

func TestUniqueCategories(t *testing.T) {
	tasks := []model.Task{
		{Category: "Work"},
		{Category: "General"},
		{Category: "Work"},
		{Category: "Shopping"},
		{Category: "General"},
	}
	got := todo.UniqueCategories(tasks)
	want := []string{"Work", "General", "Shopping"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if got := todo.UniqueCategories(nil); len(got) != 0 {
		t.Fatalf("expected no categories, got %v", got)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    todo.Filter
		wantErr bool
	}{
		{in: "", want: todo.FilterAll},
		{in: "completed", want: todo.FilterCompleted},
		{in: " Pinned ", want: todo.FilterPinned},
		{in: "INCOMPLETE", want: todo.FilterIncomplete},
		{in: "later", wantErr: true},
	}
	for _, tt := range tests {
		got, err := todo.ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFilter(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsReminderDue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{name: "No due date", task: model.Task{}, want: false},
		{name: "In 30 minutes", task: model.Task{DueDate: ptr(now.Add(30 * time.Minute))}, want: true},
		{name: "Exactly one hour", task: model.Task{DueDate: ptr(now.Add(time.Hour))}, want: true},
		{name: "Just over one hour", task: model.Task{DueDate: ptr(now.Add(time.Hour + time.Second))}, want: false},
		{name: "Due now", task: model.Task{DueDate: ptr(now)}, want: false},
		{name: "Overdue", task: model.Task{DueDate: ptr(now.Add(-time.Minute))}, want: false},
		{name: "Done", task: model.Task{Done: true, DueDate: ptr(now.Add(time.Minute))}, want: false},
		{name: "Already notified", task: model.Task{Notified: true, DueDate: ptr(now.Add(time.Minute))}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := todo.IsReminderDue(tt.task, now); got != tt.want {
				t.Errorf("IsReminderDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReminderBody(t *testing.T) {
	got := todo.ReminderBody(model.Task{Text: "buy milk"})
	if got != `Task "buy milk" is due soon!` {
		t.Errorf("unexpected body %q", got)
	}
}
