package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-todo/internal/model"
	"voice-todo/internal/todo"
)

// AddTask appends a task. Blank text is ignored.
func (uc *implUseCase) AddTask(ctx context.Context, input todo.AddTaskInput) (todo.AddTaskOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.AddTaskOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.add(ctx, input), nil
}

// add requires uc.mu.
func (uc *implUseCase) add(ctx context.Context, input todo.AddTaskInput) todo.AddTaskOutput {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return todo.AddTaskOutput{}
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	var due *time.Time
	if input.DueDate != nil {
		d := *input.DueDate
		due = &d
	}

	t := model.Task{
		ID:        uuid.NewString(),
		Text:      text,
		DueDate:   due,
		Category:  category,
		CreatedAt: uc.now(),
	}
	uc.tasks = append(uc.tasks, t)
	uc.enqueue(t)
	uc.persist(ctx)

	uc.l.Debugf(ctx, "todo.usecase.AddTask: added %s", t.ID)
	return todo.AddTaskOutput{Task: t, Created: true}
}
