package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-todo/internal/model"
	"voice-todo/internal/speech"
	"voice-todo/internal/todo/repository"
)

// Mock logger for testing
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

// Mock notifier recording every reminder
type mockNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (m *mockNotifier) RequestPermission(ctx context.Context) error { return nil }

func (m *mockNotifier) Notify(ctx context.Context, title, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, title+" "+body)
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// Storage whose saves always fail
type failingStorage struct {
	saves int
}

func (f *failingStorage) Load(ctx context.Context) ([]model.Task, error) { return nil, nil }

func (f *failingStorage) Save(ctx context.Context, tasks []model.Task) error {
	f.saves++
	return errors.New("disk full")
}

// flakyKV fails the first failGets reads and otherwise delegates.
type flakyKV struct {
	repository.KVStore
	failGets int
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failGets > 0 {
		f.failGets--
		return nil, false, errors.New("database is locked")
	}
	return f.KVStore.Get(ctx, key)
}

var baseTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, kv repository.KVStore, in speech.Input) (*implUseCase, *mockNotifier) {
	t.Helper()
	n := &mockNotifier{}
	repo := repository.New(kv, time.UTC, &mockLogger{})
	uc, err := New(context.Background(), &mockLogger{}, repo, n, in)
	if err != nil {
		t.Fatalf("new use case: %v", err)
	}
	uc.now = func() time.Time { return baseTime }
	return uc, n
}

func at(d time.Duration) *time.Time {
	t := baseTime.Add(d)
	return &t
}
