package usecase

import (
	"context"

	"voice-todo/internal/todo"
)

// DeleteTask removes the task with id. Unknown ids are a no-op.
// A queued reminder for the task is dropped lazily by the next scan.
func (uc *implUseCase) DeleteTask(ctx context.Context, id string) (todo.MutateOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.MutateOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.MutateOutput{}, nil
	}

	removed := uc.tasks[i]
	uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
	uc.persist(ctx)

	return todo.MutateOutput{Task: removed, Found: true}, nil
}
