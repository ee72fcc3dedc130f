package notify

import (
	"context"

	pkgLog "voice-todo/pkg/log"
)

// Log writes reminders to the service log. It is always available.
type Log struct {
	l pkgLog.Logger
}

func NewLog(l pkgLog.Logger) *Log {
	return &Log{l: l}
}

func (n *Log) RequestPermission(ctx context.Context) error { return nil }

func (n *Log) Notify(ctx context.Context, title, body string) {
	n.l.Infof(ctx, "notify.Log: %s %s", title, body)
}
