package telegram

import "errors"

var (
	errNoMatch   = errors.New("no task matches that id")
	errAmbiguous = errors.New("more than one task matches that id, use more characters")
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return "⚠️ " + err.Error()
}
