package main

import (
	"context"
	"fmt"

	"voice-todo/config"
	"voice-todo/internal/httpserver"
	"voice-todo/internal/todo/repository"
	"voice-todo/internal/todo/repository/file"
	"voice-todo/internal/todo/repository/memory"
	"voice-todo/internal/todo/repository/sqlite"
)

// openStore opens the key-value backend selected by storage.driver.
func openStore(cfg config.StorageConfig) (repository.KVStore, error) {
	switch cfg.Driver {
	case config.StorageDriverFile, "":
		s, err := file.Open(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageDriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageDriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func storageReadyCheck(driver string, kv repository.KVStore) httpserver.ReadyCheck {
	return httpserver.ReadyCheck{
		Name: "storage:" + driver,
		Check: func(ctx context.Context) error {
			_, _, err := kv.Get(ctx, repository.Key)
			return err
		},
	}
}
