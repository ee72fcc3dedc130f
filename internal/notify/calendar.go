package notify

import (
	"context"
	"sync"
	"time"

	"voice-todo/pkg/gcalendar"
	pkgLog "voice-todo/pkg/log"
)

// Calendar books a short Google Calendar event with a popup for each reminder.
type Calendar struct {
	l        pkgLog.Logger
	client   *gcalendar.Client
	timezone string
	now      func() time.Time

	once    sync.Once
	permErr error
}

func NewCalendar(l pkgLog.Logger, client *gcalendar.Client, timezone string) *Calendar {
	return &Calendar{l: l, client: client, timezone: timezone, now: time.Now}
}

// RequestPermission checks calendar access once and caches the outcome.
func (n *Calendar) RequestPermission(ctx context.Context) error {
	n.once.Do(func() {
		n.permErr = n.client.CheckAccess(ctx)
	})
	return n.permErr
}

func (n *Calendar) Notify(ctx context.Context, title, body string) {
	event, err := n.client.CreateReminder(ctx, gcalendar.Reminder{
		Summary:     title,
		Description: body,
		At:          n.now(),
		Timezone:    n.timezone,
	})
	if err != nil {
		n.l.Warnf(ctx, "notify.Calendar: create reminder failed: %v", err)
		return
	}
	n.l.Debugf(ctx, "notify.Calendar: reminder booked %s", event.HtmlLink)
}
