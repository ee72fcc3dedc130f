// Package speech holds the speech-to-text input collaborator: a transcript that
// accumulates while listening, plus start/stop/reset controls.
package speech

// Input is the speech input contract consumed by the todo use case and deliveries.
type Input interface {
	Supported() bool
	Transcript() string
	Listening() bool
	Start()
	Stop()
	Reset()
	// Take returns the transcript and clears it in one step. A blank
	// transcript is returned and kept.
	Take() string
	// Append adds a recognised fragment. Ignored while not listening.
	Append(fragment string) bool
}

// State is a snapshot of an Input.
type State struct {
	Supported  bool   `json:"supported"`
	Listening  bool   `json:"listening"`
	Transcript string `json:"transcript"`
}

// Snapshot reads the current state of in.
func Snapshot(in Input) State {
	return State{
		Supported:  in.Supported(),
		Listening:  in.Listening(),
		Transcript: in.Transcript(),
	}
}
