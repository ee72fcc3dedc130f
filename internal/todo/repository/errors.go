package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load tasks")
	ErrFailedToSave = errors.New("failed to save tasks")
	ErrMalformed    = errors.New("malformed task payload")
)
