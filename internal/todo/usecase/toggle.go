package usecase

import (
	"context"

	"voice-todo/internal/todo"
)

// ToggleDone flips the done flag of the task with id. Unknown ids are a no-op.
func (uc *implUseCase) ToggleDone(ctx context.Context, id string) (todo.MutateOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.MutateOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.MutateOutput{}, nil
	}

	uc.tasks[i].Done = !uc.tasks[i].Done
	// An un-done task may be owed a reminder again.
	uc.enqueue(uc.tasks[i])
	uc.persist(ctx)

	return todo.MutateOutput{Task: uc.tasks[i], Found: true}, nil
}

// TogglePinned flips the pinned flag of the task with id. Unknown ids are a no-op.
func (uc *implUseCase) TogglePinned(ctx context.Context, id string) (todo.MutateOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.MutateOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.MutateOutput{}, nil
	}

	uc.tasks[i].Pinned = !uc.tasks[i].Pinned
	uc.persist(ctx)

	return todo.MutateOutput{Task: uc.tasks[i], Found: true}, nil
}
