// Package notify delivers due reminders to the user.
package notify

import "context"

// Notifier is the fire-and-forget alert collaborator. Notify never reports
// delivery failures back to the caller; implementations log them.
type Notifier interface {
	// RequestPermission prepares delivery. Safe to call more than once.
	RequestPermission(ctx context.Context) error
	Notify(ctx context.Context, title, body string)
}
