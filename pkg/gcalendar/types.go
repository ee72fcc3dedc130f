package gcalendar

import "time"

// Reminder is the input for booking a reminder event.
type Reminder struct {
	Summary     string
	Description string
	At          time.Time
	Duration    time.Duration // defaults to DefaultReminderDuration
	Timezone    string        // IANA name, e.g. "Asia/Ho_Chi_Minh"; empty keeps At's offset
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

// DefaultReminderDuration is the length of a reminder event.
const DefaultReminderDuration = 15 * time.Minute
