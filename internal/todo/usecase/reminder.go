package usecase

import (
	"context"
	"time"

	"voice-todo/internal/model"
	"voice-todo/internal/todo"
)

// ScanDueReminders fires a reminder for every task due within the lookahead
// window and marks it notified. The result depends only on the list and now,
// so a scan with an earlier now still fires tasks inside its window.
// Notifications are sent after the list is persisted and the lock released.
func (uc *implUseCase) ScanDueReminders(ctx context.Context, now time.Time) (todo.ScanOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.ScanOutput{}, err
	}

	fired := uc.collectDue(ctx, now)
	for _, t := range fired {
		uc.notifier.Notify(ctx, todo.ReminderTitle, todo.ReminderBody(t))
	}
	if len(fired) > 0 {
		uc.l.Infof(ctx, "todo.usecase.ScanDueReminders: notified %d tasks", len(fired))
	}

	return todo.ScanOutput{Notified: fired}, nil
}

func (uc *implUseCase) collectDue(ctx context.Context, now time.Time) []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	horizon := now.Add(todo.ReminderLookahead)
	var fired []model.Task
	var pastDue []dueEntry
	for {
		e, ok := uc.queue.peek()
		if !ok || e.due.After(horizon) {
			break
		}
		uc.queue.pop()

		i := uc.indexOf(e.id)
		if i < 0 {
			continue
		}
		t := &uc.tasks[i]
		if !t.HasDueDate() || !t.DueDate.Equal(e.due) {
			continue
		}
		if t.Done || t.Notified {
			continue
		}
		if !todo.IsReminderDue(*t, now) {
			// Due at or before now; kept in case a later scan runs with an earlier clock.
			pastDue = append(pastDue, e)
			continue
		}
		t.Notified = true
		fired = append(fired, *t)
	}
	for _, e := range pastDue {
		uc.queue.push(e.id, e.due)
	}

	if len(fired) > 0 {
		uc.persist(ctx)
	}
	return fired
}
