package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client books reminder events on one Google calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Client from a Service Account or
// installed-app credentials file. tokenPath is only read for installed-app credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, calendarID)
}

// NewClientFromCredentialsJSON creates a Client from raw credentials JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath, calendarID string) (*Client, error) {
	if jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newClient(ctx, calendarID, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, calendarID, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	return newClient(ctx, calendarID, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, calendarID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

func readToken(tokenPath string) (*oauth2.Token, error) {
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}
	return &tok, nil
}

// CalendarID returns the calendar events are booked on.
func (c *Client) CalendarID() string {
	return c.calendarID
}

// CheckAccess verifies the credentials can reach the events of the target calendar.
func (c *Client) CheckAccess(ctx context.Context) error {
	if _, err := c.service.Events.List(c.calendarID).MaxResults(1).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar %s not accessible: %w", c.calendarID, err)
	}
	return nil
}

// CreateReminder books an event at r.At with a popup at its start.
func (c *Client) CreateReminder(ctx context.Context, r Reminder) (*Event, error) {
	duration := r.Duration
	if duration <= 0 {
		duration = DefaultReminderDuration
	}
	start := r.At
	end := start.Add(duration)

	event := &calendar.Event{
		Summary:     r.Summary,
		Description: r.Description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: r.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: r.Timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: 0}},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: start,
		EndTime:   end,
	}, nil
}
