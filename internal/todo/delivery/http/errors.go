package http

import (
	"errors"
	"net/http"

	"voice-todo/internal/todo"
	pkgErrors "voice-todo/pkg/errors"
)

var (
	errIDRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid due date")
	errTaskNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid filter")
	case errors.Is(err, todo.ErrSpeechUnsupported):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, todo.UnsupportedMessage)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
