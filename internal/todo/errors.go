package todo

import "errors"

var (
	ErrSpeechUnsupported = errors.New("speech recognition is not supported")
	ErrInvalidFilter     = errors.New("invalid filter")
)

// UnsupportedMessage replaces the interactive surface when speech input is unavailable.
const UnsupportedMessage = "Your browser does not support speech recognition."
