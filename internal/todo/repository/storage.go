package repository

import (
	"context"
	"fmt"
	"time"

	"voice-todo/internal/model"
	"voice-todo/pkg/log"
)

type implStorage struct {
	kv  KVStore
	key string
	loc *time.Location
	l   log.Logger
}

// New creates a Storage that keeps the task list under Key in kv.
// loc is used for due dates persisted without a zone.
func New(kv KVStore, loc *time.Location, l log.Logger) Storage {
	if kv == nil {
		panic("todo/repository: kv store is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &implStorage{kv: kv, key: Key, loc: loc, l: l}
}

// Load reads and decodes the list. ErrMalformed is returned when the stored
// payload cannot be used; callers treat that as an empty list.
func (s *implStorage) Load(ctx context.Context) ([]model.Task, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoad, err)
	}
	if !ok {
		return nil, nil
	}

	tasks, err := Decode(raw, s.loc)
	if err != nil {
		s.l.Warnf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, err
	}
	return tasks, nil
}

// Save encodes and overwrites the stored list.
func (s *implStorage) Save(ctx context.Context, tasks []model.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSave, err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", ErrFailedToSave, err)
	}
	return nil
}

func (s *implStorage) dsn(method string) string {
	return fmt.Sprintf("todo/repository.%s", method)
}
