package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for zone-less timestamps. The first is what an HTML
// datetime-local input produces.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// maxRelativeOffset bounds "in N <unit>" phrases well inside time.Duration range.
const maxRelativeOffset = 100 * 366 * 24 * time.Hour

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (minute|minutes|min|mins|hour|hours|day|days|week|weeks|month|months)$`)
	clockRe      = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Parser converts due-date text to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location is the zone zone-less input is read in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDueDate parses optional due-date text. Empty text means no due date.
func (p *Parser) ParseDueDate(text string, baseTime time.Time) (*time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	res, err := p.Parse(text, baseTime)
	if err != nil {
		return nil, err
	}
	return &res.AbsoluteTime, nil
}

// Parse converts a timestamp or relative phrase to an absolute time.
// Accepted: RFC3339, "2006-01-02T15:04" and friends in the parser's zone,
// "2006-01-02", "today", "tomorrow", "yesterday", "in 3 days", "in 2 hours",
// "next monday". Day phrases take an optional " at 14:30".
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(text string, baseTime time.Time) (ParseResult, error) {
	text = strings.TrimSpace(text)

	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return ParseResult{AbsoluteTime: t}, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, text, p.location); err == nil {
			return ParseResult{AbsoluteTime: t}, nil
		}
	}
	if t, err := time.ParseInLocation(dateLayout, text, p.location); err == nil {
		return ParseResult{AbsoluteTime: t, IsAllDay: true}, nil
	}

	return p.parseRelative(strings.ToLower(text), baseTime)
}

func (p *Parser) parseRelative(relative string, baseTime time.Time) (ParseResult, error) {
	day, clock, hasClock := strings.Cut(relative, " at ")
	day = strings.TrimSpace(day)

	var res ParseResult
	var err error
	switch {
	case day == "today":
		res = p.allDay(baseTime)
	case day == "tomorrow":
		res = p.allDay(baseTime.AddDate(0, 0, 1))
	case day == "yesterday":
		res = p.allDay(baseTime.AddDate(0, 0, -1))
	case strings.HasPrefix(day, "in "):
		res, err = p.parseInDuration(day, baseTime)
	case strings.HasPrefix(day, "next "):
		res, err = p.parseNextWeekday(day, baseTime)
	default:
		return ParseResult{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}
	if err != nil {
		return ParseResult{}, err
	}

	if !hasClock {
		return res, nil
	}
	if !res.IsAllDay {
		return ParseResult{}, fmt.Errorf("%w: time of day not allowed in %q", ErrUnrecognized, relative)
	}
	return p.withClock(res.AbsoluteTime, strings.TrimSpace(clock))
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 90 minutes".
// Minutes and hours are exact offsets; larger units land on the start of the day.
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (ParseResult, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return ParseResult{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: invalid amount in %q", ErrUnrecognized, relative)
	}
	unit := matches[2]
	if amount > int(maxRelativeOffset/unitLength(unit)) {
		return ParseResult{}, fmt.Errorf("%w: %q is too far ahead", ErrUnrecognized, relative)
	}

	switch {
	case strings.HasPrefix(unit, "min"):
		return ParseResult{AbsoluteTime: baseTime.Add(time.Duration(amount) * time.Minute)}, nil
	case strings.HasPrefix(unit, "hour"):
		return ParseResult{AbsoluteTime: baseTime.Add(time.Duration(amount) * time.Hour)}, nil
	case strings.HasPrefix(unit, "day"):
		return p.allDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.allDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.allDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// unitLength is the longest span one unit can cover.
func unitLength(unit string) time.Duration {
	switch {
	case strings.HasPrefix(unit, "min"):
		return time.Minute
	case strings.HasPrefix(unit, "hour"):
		return time.Hour
	case strings.HasPrefix(unit, "day"):
		return 25 * time.Hour
	case strings.HasPrefix(unit, "week"):
		return 7 * 25 * time.Hour
	default:
		return 31 * 25 * time.Hour
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (ParseResult, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return ParseResult{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.allDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) withClock(day time.Time, clock string) (ParseResult, error) {
	matches := clockRe.FindStringSubmatch(clock)
	if len(matches) != 3 {
		return ParseResult{}, fmt.Errorf("%w: invalid time of day %q", ErrUnrecognized, clock)
	}
	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return ParseResult{}, fmt.Errorf("%w: invalid time of day %q", ErrUnrecognized, clock)
	}
	return ParseResult{
		AbsoluteTime: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location),
	}, nil
}

func (p *Parser) allDay(t time.Time) ParseResult {
	return ParseResult{AbsoluteTime: p.startOfDay(t), IsAllDay: true}
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
