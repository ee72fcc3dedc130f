package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-todo/internal/todo"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockScanner struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
	seen  chan struct{}
}

func (m *mockScanner) ScanDueReminders(ctx context.Context, now time.Time) (todo.ScanOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, now)
	m.mu.Unlock()
	select {
	case m.seen <- struct{}{}:
	default:
	}
	return todo.ScanOutput{}, m.err
}

func (m *mockScanner) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestSchedulerRun(t *testing.T) {
	scanner := &mockScanner{seen: make(chan struct{}, 8), err: errors.New("boom")}
	s := New(&mockLogger{}, scanner, 10*time.Millisecond)
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-scanner.seen:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected scan %d", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler did not stop on cancel")
	}

	if scanner.count() < 3 {
		t.Fatalf("expected at least 3 scans, got %d", scanner.count())
	}
	if !scanner.calls[0].Equal(fixed) {
		t.Errorf("expected scans at the injected clock, got %v", scanner.calls[0])
	}
}

func TestSchedulerScansImmediately(t *testing.T) {
	scanner := &mockScanner{seen: make(chan struct{}, 1)}
	s := New(&mockLogger{}, scanner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case <-scanner.seen:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an immediate scan before the first tick")
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(&mockLogger{}, &mockScanner{}, 0)
	if s.interval != DefaultInterval {
		t.Fatalf("expected %s, got %s", DefaultInterval, s.interval)
	}
}
