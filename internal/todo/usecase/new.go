package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"voice-todo/internal/model"
	"voice-todo/internal/notify"
	"voice-todo/internal/speech"
	"voice-todo/internal/todo/repository"
	"voice-todo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
// The in-memory list is authoritative; repo mirrors it after every mutation.
type implUseCase struct {
	l        log.Logger
	repo     repository.Storage
	notifier notify.Notifier
	speech   speech.Input
	now      func() time.Time

	mu    sync.Mutex
	tasks []model.Task
	queue dueQueue
}

// New creates the todo use case and loads the persisted list.
// A missing or malformed record starts an empty list. A storage read failure
// is returned so the stored list is never overwritten by an empty one.
func New(ctx context.Context, l log.Logger, repo repository.Storage, notifier notify.Notifier, in speech.Input) (*implUseCase, error) {
	if in == nil {
		in = speech.Unsupported{}
	}
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		speech:   in,
		now:      time.Now,
	}
	if err := uc.load(ctx); err != nil {
		return nil, err
	}
	return uc, nil
}

func (uc *implUseCase) load(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrMalformed) {
			uc.l.Errorf(ctx, "todo.usecase.load: %v", err)
			return err
		}
		uc.l.Warnf(ctx, "todo.usecase.load: discarding stored tasks: %v", err)
		tasks = nil
	}

	migrated := 0
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
			migrated++
		}
	}

	uc.tasks = tasks
	for _, t := range uc.tasks {
		uc.enqueue(t)
	}

	if migrated > 0 {
		uc.l.Infof(ctx, "todo.usecase.load: assigned ids to %d stored tasks", migrated)
		uc.persist(ctx)
	}
	return nil
}

// persist writes the list through to storage. Failures leave memory authoritative.
func (uc *implUseCase) persist(ctx context.Context) {
	if err := uc.repo.Save(ctx, uc.tasks); err != nil {
		uc.l.Warnf(ctx, "todo.usecase.persist: %v", err)
	}
}
