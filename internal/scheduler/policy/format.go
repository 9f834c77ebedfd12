package policy

import (
	"fmt"
	"time"

	"task-scheduling-advisor/internal/model"
)

const (
	labelAnyTime     = "Any time"
	labelUnknownDay  = "Unknown"
	labelInvalidTime = "Invalid time"

	layout12h = "3:04 PM"
	layout24h = "15:04"
)

var weekdays = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// FormatTimeOfDay renders a time-of-day bucket with its hour range.
func FormatTimeOfDay(t model.TimeOfDay) string {
	switch t {
	case model.TimeOfDayMorning:
		return "Morning (8am-12pm)"
	case model.TimeOfDayAfternoon:
		return "Afternoon (12pm-5pm)"
	case model.TimeOfDayEvening:
		return "Evening (5pm-9pm)"
	default:
		return labelAnyTime
	}
}

// FormatDayOfWeek maps 0-6 (Sunday first) to a weekday name, anything else to "Unknown".
func FormatDayOfWeek(day int) string {
	if day < 0 || day >= len(weekdays) {
		return labelUnknownDay
	}
	return weekdays[day]
}

// FormatSlotLabel renders the slot as local wall-clock times, e.g. "9:00 AM - 9:30 AM".
func FormatSlotLabel(slot model.TimeSlot, prefs Preferences) string {
	if slot.Start.IsZero() || slot.End.IsZero() {
		return labelInvalidTime
	}

	loc := prefs.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := layout12h
	if prefs.Clock24h {
		layout = layout24h
	}
	return fmt.Sprintf("%s - %s", slot.Start.In(loc).Format(layout), slot.End.In(loc).Format(layout))
}

// FormatDuration renders minutes as "45m", "2h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
