package usecase

import (
	"context"

	"voice-todo/internal/todo"
)

// List returns the filtered and sorted view plus stats over the whole list.
func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.ListOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return todo.ListOutput{
		Tasks: todo.DeriveView(uc.tasks, input.Filter, input.Category),
		Stats: todo.ComputeStats(uc.tasks),
	}, nil
}

func (uc *implUseCase) Stats(ctx context.Context) (todo.Stats, error) {
	if err := ctx.Err(); err != nil {
		return todo.Stats{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return todo.ComputeStats(uc.tasks), nil
}

// Categories returns the preset categories and those in use, in first-seen order.
func (uc *implUseCase) Categories(ctx context.Context) (todo.CategoriesOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.CategoriesOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets := make([]string, len(todo.PresetCategories))
	copy(presets, todo.PresetCategories)
	return todo.CategoriesOutput{
		Presets: presets,
		InUse:   todo.UniqueCategories(uc.tasks),
	}, nil
}
