package todo

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Mutations, persisted write-through.
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)
	ToggleDone(ctx context.Context, id string) (MutateOutput, error)
	TogglePinned(ctx context.Context, id string) (MutateOutput, error)
	DeleteTask(ctx context.Context, id string) (MutateOutput, error)

	// SaveTranscript adds the current speech transcript as a task and clears it.
	SaveTranscript(ctx context.Context, input SaveTranscriptInput) (AddTaskOutput, error)

	// ScanDueReminders notifies tasks whose due date falls inside the lookahead window.
	ScanDueReminders(ctx context.Context, now time.Time) (ScanOutput, error)

	// Reads.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Stats(ctx context.Context) (Stats, error)
	Categories(ctx context.Context) (CategoriesOutput, error)
}
