package usecase

import (
	"context"

	"voice-todo/internal/todo"
)

// SaveTranscript turns the current speech transcript into a task.
// The transcript is taken atomically, so fragments appended meanwhile are
// kept for the next save. A blank transcript creates nothing.
func (uc *implUseCase) SaveTranscript(ctx context.Context, input todo.SaveTranscriptInput) (todo.AddTaskOutput, error) {
	if err := ctx.Err(); err != nil {
		return todo.AddTaskOutput{}, err
	}
	if !uc.speech.Supported() {
		return todo.AddTaskOutput{}, todo.ErrSpeechUnsupported
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.add(ctx, todo.AddTaskInput{
		Text:     uc.speech.Take(),
		DueDate:  input.DueDate,
		Category: input.Category,
	}), nil
}
