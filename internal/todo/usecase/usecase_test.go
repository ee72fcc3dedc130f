package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-todo/internal/speech"
	"voice-todo/internal/todo"
	"voice-todo/internal/todo/repository"
	"voice-todo/internal/todo/repository/memory"
)

func TestAddTask(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	uc, _ := newTestUseCase(t, kv, nil)

	t.Run("Whitespace only is ignored", func(t *testing.T) {
		out, err := uc.AddTask(ctx, todo.AddTaskInput{Text: "  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created {
			t.Fatalf("blank text must not create a task")
		}
		if len(uc.tasks) != 0 {
			t.Fatalf("list must stay empty, got %d", len(uc.tasks))
		}
		if _, ok, _ := kv.Get(ctx, repository.Key); ok {
			t.Fatalf("nothing must be persisted for a no-op")
		}
	})

	t.Run("Trimmed with defaults", func(t *testing.T) {
		out, err := uc.AddTask(ctx, todo.AddTaskInput{Text: "  buy milk  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		task := out.Task
		if !out.Created || task.Text != "buy milk" || task.Category != "General" {
			t.Fatalf("unexpected task %+v", task)
		}
		if task.ID == "" || task.Done || task.Pinned || task.Notified || task.DueDate != nil {
			t.Fatalf("unexpected defaults %+v", task)
		}
		if !task.CreatedAt.Equal(baseTime) {
			t.Errorf("expected createdAt %v, got %v", baseTime, task.CreatedAt)
		}
	})

	t.Run("Persisted write-through", func(t *testing.T) {
		uc.AddTask(ctx, todo.AddTaskInput{Text: "call mom", Category: "Personal", DueDate: at(3 * time.Hour)})

		reloaded, _ := newTestUseCase(t, kv, nil)
		if len(reloaded.tasks) != 2 {
			t.Fatalf("expected 2 persisted tasks, got %d", len(reloaded.tasks))
		}
		got := reloaded.tasks[1]
		if got.Text != "call mom" || got.Category != "Personal" || !got.DueDate.Equal(*at(3 * time.Hour)) {
			t.Errorf("unexpected reloaded task %+v", got)
		}
		if got.ID != uc.tasks[1].ID {
			t.Errorf("ids must survive a reload")
		}
	})

	t.Run("Canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := uc.AddTask(cctx, todo.AddTaskInput{Text: "x"}); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, memory.New(), nil)
	for _, text := range []string{"a", "b", "c"} {
		uc.AddTask(ctx, todo.AddTaskInput{Text: text})
	}
	id := uc.tasks[1].ID

	out, err := uc.ToggleDone(ctx, id)
	if err != nil || !out.Found || !out.Task.Done {
		t.Fatalf("expected done toggled, got %+v err=%v", out, err)
	}
	out, _ = uc.ToggleDone(ctx, id)
	if out.Task.Done {
		t.Fatalf("second toggle must restore done=false")
	}

	out, _ = uc.TogglePinned(ctx, id)
	if !out.Found || !out.Task.Pinned {
		t.Fatalf("expected pinned, got %+v", out)
	}

	for name, fn := range map[string]func(context.Context, string) (todo.MutateOutput, error){
		"ToggleDone":   uc.ToggleDone,
		"TogglePinned": uc.TogglePinned,
		"DeleteTask":   uc.DeleteTask,
	} {
		out, err := fn(ctx, "5")
		if err != nil || out.Found {
			t.Errorf("%s on unknown id must be a no-op, got %+v err=%v", name, out, err)
		}
	}
	if len(uc.tasks) != 3 {
		t.Fatalf("unknown id must leave the list unchanged, got %d", len(uc.tasks))
	}

	out, err = uc.DeleteTask(ctx, id)
	if err != nil || !out.Found || out.Task.Text != "b" {
		t.Fatalf("unexpected delete result %+v err=%v", out, err)
	}
	if len(uc.tasks) != 2 || uc.tasks[0].Text != "a" || uc.tasks[1].Text != "c" {
		t.Fatalf("unexpected list after delete %+v", uc.tasks)
	}
}

func TestScanDueReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("Fires once inside the window", func(t *testing.T) {
		uc, n := newTestUseCase(t, memory.New(), nil)
		uc.AddTask(ctx, todo.AddTaskInput{Text: "soon", DueDate: at(30 * time.Minute)})
		uc.AddTask(ctx, todo.AddTaskInput{Text: "edge", DueDate: at(time.Hour)})
		uc.AddTask(ctx, todo.AddTaskInput{Text: "later", DueDate: at(2 * time.Hour)})
		uc.AddTask(ctx, todo.AddTaskInput{Text: "past", DueDate: at(-time.Minute)})
		uc.AddTask(ctx, todo.AddTaskInput{Text: "undated"})

		out, err := uc.ScanDueReminders(ctx, baseTime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Notified) != 2 || out.Notified[0].Text != "soon" || out.Notified[1].Text != "edge" {
			t.Fatalf("unexpected notified %+v", out.Notified)
		}
		if n.count() != 2 {
			t.Fatalf("expected 2 notifications, got %d", n.count())
		}
		if !strings.Contains(n.sent[0], todo.ReminderTitle) || !strings.Contains(n.sent[0], `Task "soon" is due soon!`) {
			t.Errorf("unexpected message %q", n.sent[0])
		}

		out, _ = uc.ScanDueReminders(ctx, baseTime)
		if len(out.Notified) != 0 || n.count() != 2 {
			t.Fatalf("second scan with the same now must not notify again")
		}

		// "later" enters the window an hour on.
		out, _ = uc.ScanDueReminders(ctx, baseTime.Add(90*time.Minute))
		if len(out.Notified) != 1 || out.Notified[0].Text != "later" {
			t.Fatalf("expected later to fire, got %+v", out.Notified)
		}
		if uc.tasks[3].Notified {
			t.Errorf("a past-due task must never be notified")
		}
	})

	t.Run("Done tasks are skipped until reopened", func(t *testing.T) {
		uc, n := newTestUseCase(t, memory.New(), nil)
		out, _ := uc.AddTask(ctx, todo.AddTaskInput{Text: "report", DueDate: at(45 * time.Minute)})
		uc.ToggleDone(ctx, out.Task.ID)

		uc.ScanDueReminders(ctx, baseTime)
		if n.count() != 0 {
			t.Fatalf("done task must not be notified")
		}

		uc.ToggleDone(ctx, out.Task.ID)
		uc.ScanDueReminders(ctx, baseTime.Add(time.Minute))
		if n.count() != 1 {
			t.Fatalf("reopened task must be notified, got %d", n.count())
		}
		if !uc.tasks[0].Notified {
			t.Fatalf("task must be marked notified")
		}

		uc.ToggleDone(ctx, out.Task.ID)
		uc.ToggleDone(ctx, out.Task.ID)
		uc.ScanDueReminders(ctx, baseTime.Add(2*time.Minute))
		if n.count() != 1 {
			t.Fatalf("notified must never reset, got %d notifications", n.count())
		}
	})

	t.Run("Deleted tasks are skipped", func(t *testing.T) {
		uc, n := newTestUseCase(t, memory.New(), nil)
		out, _ := uc.AddTask(ctx, todo.AddTaskInput{Text: "gone", DueDate: at(10 * time.Minute)})
		uc.DeleteTask(ctx, out.Task.ID)

		uc.ScanDueReminders(ctx, baseTime)
		if n.count() != 0 {
			t.Fatalf("deleted task must not be notified")
		}
		if uc.queue.len() != 0 {
			t.Fatalf("stale entry must be dropped, queue has %d", uc.queue.len())
		}
	})

	t.Run("Clock stepping back still fires", func(t *testing.T) {
		uc, n := newTestUseCase(t, memory.New(), nil)
		uc.AddTask(ctx, todo.AddTaskInput{Text: "standup", DueDate: at(30 * time.Minute)})

		uc.ScanDueReminders(ctx, baseTime.Add(time.Hour))
		if n.count() != 0 {
			t.Fatalf("task due before now must not fire")
		}

		out, _ := uc.ScanDueReminders(ctx, baseTime)
		if len(out.Notified) != 1 || n.count() != 1 || !uc.tasks[0].Notified {
			t.Fatalf("expected one notification after the clock stepped back, got %d", n.count())
		}

		uc.ScanDueReminders(ctx, baseTime)
		if n.count() != 1 || uc.queue.len() != 0 {
			t.Fatalf("notified task must leave the queue, got %d notifications, %d queued", n.count(), uc.queue.len())
		}
	})

	t.Run("Notified flag is persisted", func(t *testing.T) {
		kv := memory.New()
		uc, _ := newTestUseCase(t, kv, nil)
		uc.AddTask(ctx, todo.AddTaskInput{Text: "soon", DueDate: at(5 * time.Minute)})
		uc.ScanDueReminders(ctx, baseTime)

		reloaded, n := newTestUseCase(t, kv, nil)
		if !reloaded.tasks[0].Notified {
			t.Fatalf("notified must be persisted")
		}
		reloaded.ScanDueReminders(ctx, baseTime)
		if n.count() != 0 {
			t.Fatalf("reloaded notified task must not fire again")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, memory.New(), nil)
	uc.AddTask(ctx, todo.AddTaskInput{Text: "two hours", DueDate: at(2 * time.Hour), Category: "Work"})
	pinned, _ := uc.AddTask(ctx, todo.AddTaskInput{Text: "pinned"})
	uc.AddTask(ctx, todo.AddTaskInput{Text: "one hour", DueDate: at(time.Hour)})
	uc.TogglePinned(ctx, pinned.Task.ID)
	uc.ToggleDone(ctx, pinned.Task.ID)

	out, err := uc.List(ctx, todo.ListInput{Filter: todo.FilterAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, task := range out.Tasks {
		got = append(got, task.Text)
	}
	if strings.Join(got, ",") != "pinned,one hour,two hours" {
		t.Fatalf("unexpected order %v", got)
	}
	if out.Stats.Done != 1 || out.Stats.Total != 3 {
		t.Errorf("unexpected stats %+v", out.Stats)
	}

	out, _ = uc.List(ctx, todo.ListInput{Filter: todo.FilterIncomplete, Category: "Work"})
	if len(out.Tasks) != 1 || out.Tasks[0].Text != "two hours" {
		t.Fatalf("unexpected filtered view %+v", out.Tasks)
	}
	if out.Stats.Total != 3 {
		t.Errorf("stats must cover the whole list, got %+v", out.Stats)
	}

	stats, _ := uc.Stats(ctx)
	if stats.Done != 1 || stats.Total != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}

	cats, _ := uc.Categories(ctx)
	if strings.Join(cats.Presets, ",") != "General,Work,Personal,Shopping" {
		t.Errorf("unexpected presets %v", cats.Presets)
	}
	if strings.Join(cats.InUse, ",") != "Work,General" {
		t.Errorf("unexpected categories in use %v", cats.InUse)
	}
}

func TestSaveTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("Unsupported", func(t *testing.T) {
		uc, _ := newTestUseCase(t, memory.New(), nil)
		if _, err := uc.SaveTranscript(ctx, todo.SaveTranscriptInput{}); !errors.Is(err, todo.ErrSpeechUnsupported) {
			t.Fatalf("expected ErrSpeechUnsupported, got %v", err)
		}
	})

	t.Run("Saves and clears", func(t *testing.T) {
		session := speech.NewSession()
		uc, _ := newTestUseCase(t, memory.New(), session)

		session.Start()
		session.Append("buy")
		session.Append("milk")
		session.Stop()

		out, err := uc.SaveTranscript(ctx, todo.SaveTranscriptInput{Category: "Shopping", DueDate: at(time.Hour)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created || out.Task.Text != "buy milk" || out.Task.Category != "Shopping" {
			t.Fatalf("unexpected task %+v", out.Task)
		}
		if session.Transcript() != "" {
			t.Fatalf("transcript must be cleared after save, got %q", session.Transcript())
		}
	})

	t.Run("Fragments appended during saves are kept", func(t *testing.T) {
		session := speech.NewSession()
		uc, _ := newTestUseCase(t, memory.New(), session)
		session.Start()

		const fragments = 200
		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < fragments; i++ {
				session.Append("x")
			}
		}()

		saving := true
		for saving {
			select {
			case <-done:
				saving = false
			default:
			}
			uc.SaveTranscript(ctx, todo.SaveTranscriptInput{})
		}

		total := strings.Count(session.Transcript(), "x")
		for _, task := range uc.tasks {
			total += strings.Count(task.Text, "x")
		}
		if total != fragments {
			t.Fatalf("expected %d fragments across tasks and transcript, got %d", fragments, total)
		}
	})

	t.Run("Blank transcript", func(t *testing.T) {
		session := speech.NewSession()
		uc, _ := newTestUseCase(t, memory.New(), session)

		out, err := uc.SaveTranscript(ctx, todo.SaveTranscriptInput{})
		if err != nil || out.Created {
			t.Fatalf("blank transcript must be a no-op, got %+v err=%v", out, err)
		}
		if len(uc.tasks) != 0 {
			t.Fatalf("list must stay empty")
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Legacy records get ids", func(t *testing.T) {
		kv := memory.New()
		kv.Put(ctx, repository.Key, []byte(`[
			{"text":"buy milk","done":false,"pinned":false,"dueDate":"2024-05-10T12:30","category":"Shopping"},
			{"text":"old","done":true,"pinned":true,"dueDate":null,"category":"General","notified":true}
		]`))

		uc, n := newTestUseCase(t, kv, nil)
		if len(uc.tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(uc.tasks))
		}
		if uc.tasks[0].ID == "" || uc.tasks[1].ID == "" || uc.tasks[0].ID == uc.tasks[1].ID {
			t.Fatalf("expected distinct ids, got %q %q", uc.tasks[0].ID, uc.tasks[1].ID)
		}

		raw, _, _ := kv.Get(ctx, repository.Key)
		if !strings.Contains(string(raw), uc.tasks[0].ID) {
			t.Fatalf("migrated ids must be re-saved, got %s", raw)
		}

		uc.ScanDueReminders(ctx, baseTime)
		if n.count() != 1 {
			t.Fatalf("loaded task must be scheduled, got %d notifications", n.count())
		}
	})

	t.Run("Malformed starts empty", func(t *testing.T) {
		kv := memory.New()
		kv.Put(ctx, repository.Key, []byte(`{not json`))

		uc, _ := newTestUseCase(t, kv, nil)
		if len(uc.tasks) != 0 {
			t.Fatalf("expected empty list, got %d", len(uc.tasks))
		}
		out, _ := uc.AddTask(ctx, todo.AddTaskInput{Text: "fresh"})
		if !out.Created {
			t.Fatalf("store must keep working after a malformed load")
		}
	})
}

func TestLoadReadFailure(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	seed, _ := newTestUseCase(t, kv, nil)
	for _, text := range []string{"a", "b", "c"} {
		seed.AddTask(ctx, todo.AddTaskInput{Text: text})
	}
	before, _, _ := kv.Get(ctx, repository.Key)

	flaky := &flakyKV{KVStore: kv, failGets: 1}
	repo := repository.New(flaky, time.UTC, &mockLogger{})
	if _, err := New(ctx, &mockLogger{}, repo, &mockNotifier{}, nil); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Fatalf("expected ErrFailedToLoad, got %v", err)
	}
	after, _, _ := kv.Get(ctx, repository.Key)
	if string(before) != string(after) {
		t.Fatalf("stored list must be untouched after a failed read")
	}

	uc, _ := newTestUseCase(t, flaky, nil)
	uc.AddTask(ctx, todo.AddTaskInput{Text: "d"})

	reloaded, _ := newTestUseCase(t, kv, nil)
	if len(reloaded.tasks) != 4 {
		t.Fatalf("expected 4 persisted tasks, got %d", len(reloaded.tasks))
	}
}

func TestSaveFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := &failingStorage{}
	uc, err := New(ctx, &mockLogger{}, repo, &mockNotifier{}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := uc.AddTask(ctx, todo.AddTaskInput{Text: "still here"})
	if err != nil || !out.Created {
		t.Fatalf("save failure must not fail the mutation, got %+v err=%v", out, err)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save attempt, got %d", repo.saves)
	}
	list, _ := uc.List(ctx, todo.ListInput{})
	if len(list.Tasks) != 1 {
		t.Fatalf("in-memory state must stay authoritative")
	}
}
