package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clockRe      = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)
)

// Parser converts user-entered date expressions to absolute instants.
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

// NewParserInLocation creates a parser for an already loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the timezone wall-clock inputs are interpreted in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// ParseInstant converts s to an absolute instant. Accepted forms:
//
//	2024-01-02T09:00:00+07:00   RFC 3339, kept as is
//	2024-01-02 09:00            wall clock in the parser's timezone
//	tomorrow 9:30, next monday 2:00 pm, in 2 days 08:00
//
// A relative day without a clock resolves to midnight.
func (p *Parser) ParseInstant(s string, baseTime time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnrecognized)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}

	day, clock := splitClock(strings.ToLower(s))
	start, err := p.Parse(day, baseTime)
	if err != nil {
		return time.Time{}, err
	}
	if clock == "" {
		return start, nil
	}

	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, p.location), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("%w: unknown time unit %q", ErrUnrecognized, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The same weekday as baseTime means one week later.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	daysUntil := target - int(baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// splitClock separates a trailing "HH:MM" or "HH:MM am|pm" from the day expression.
func splitClock(s string) (day, clock string) {
	fields := strings.Fields(s)
	n := len(fields)
	if n >= 3 && (fields[n-1] == "am" || fields[n-1] == "pm") && strings.Contains(fields[n-2], ":") {
		return strings.Join(fields[:n-2], " "), fields[n-2] + " " + fields[n-1]
	}
	if n >= 2 && strings.Contains(fields[n-1], ":") {
		return strings.Join(fields[:n-1], " "), fields[n-1]
	}
	return s, ""
}

func parseClock(clock string) (int, int, error) {
	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	switch m[3] {
	case "":
		if hour > 23 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
	}
	return hour, minute, nil
}
