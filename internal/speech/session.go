package speech

import (
	"strings"
	"sync"
)

// Session is an Input fed by a remote recogniser (browser, phone keyboard).
// It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	listening bool
	parts     []string
}

// NewSession returns an idle Session with an empty transcript.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) Supported() bool { return true }

func (s *Session) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.parts, " ")
}

func (s *Session) Listening() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listening
}

// Start begins continuous listening. The transcript is kept.
func (s *Session) Start() {
	s.mu.Lock()
	s.listening = true
	s.mu.Unlock()
}

func (s *Session) Stop() {
	s.mu.Lock()
	s.listening = false
	s.mu.Unlock()
}

// Reset clears the transcript without changing the listening state.
func (s *Session) Reset() {
	s.mu.Lock()
	s.parts = nil
	s.mu.Unlock()
}

func (s *Session) Take() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := strings.Join(s.parts, " ")
	if strings.TrimSpace(text) != "" {
		s.parts = nil
	}
	return text
}

func (s *Session) Append(fragment string) bool {
	fragment = strings.TrimSpace(fragment)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.listening || fragment == "" {
		return false
	}
	s.parts = append(s.parts, fragment)
	return true
}

// Unsupported is the Input used when no recogniser is available.
type Unsupported struct{}

func (Unsupported) Supported() bool             { return false }
func (Unsupported) Transcript() string          { return "" }
func (Unsupported) Listening() bool             { return false }
func (Unsupported) Start()                      {}
func (Unsupported) Stop()                       {}
func (Unsupported) Reset()                      {}
func (Unsupported) Take() string                { return "" }
func (Unsupported) Append(fragment string) bool { return false }
