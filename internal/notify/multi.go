package notify

import (
	"context"
	"errors"
)

// Multi fans a reminder out to every notifier.
type Multi []Notifier

func (m Multi) RequestPermission(ctx context.Context) error {
	var errs []error
	for _, n := range m {
		if err := n.RequestPermission(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Notify(ctx context.Context, title, body string) {
	for _, n := range m {
		n.Notify(ctx, title, body)
	}
}
