package repository

import (
	"context"

	"voice-todo/internal/model"
)

// Storage persists the whole task list as one record.
type Storage interface {
	// Load returns the persisted list. A missing record yields (nil, nil).
	Load(ctx context.Context) ([]model.Task, error)
	// Save overwrites the persisted list.
	Save(ctx context.Context, tasks []model.Task) error
}

// KVStore is the key-value backend a Storage writes through to.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
