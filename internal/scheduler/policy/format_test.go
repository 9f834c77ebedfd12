package policy_test

import (
	"testing"
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/policy"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{15, "15m"},
		{59, "59m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{125, "2h 5m"},
		{480, "8h"},
	}
	for _, tt := range tests {
		if got := policy.FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{0, "Sunday"},
		{1, "Monday"},
		{2, "Tuesday"},
		{3, "Wednesday"},
		{4, "Thursday"},
		{5, "Friday"},
		{6, "Saturday"},
		{7, "Unknown"},
		{9, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tt := range tests {
		// Repeated calls must agree.
		for i := 0; i < 2; i++ {
			if got := policy.FormatDayOfWeek(tt.day); got != tt.want {
				t.Errorf("FormatDayOfWeek(%d) = %q, want %q", tt.day, got, tt.want)
			}
		}
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	tests := []struct {
		in   model.TimeOfDay
		want string
	}{
		{model.TimeOfDayMorning, "Morning (8am-12pm)"},
		{model.TimeOfDayAfternoon, "Afternoon (12pm-5pm)"},
		{model.TimeOfDayEvening, "Evening (5pm-9pm)"},
		{model.TimeOfDayAny, "Any time"},
		{"night", "Any time"},
		{"", "Any time"},
	}
	for _, tt := range tests {
		if got := policy.FormatTimeOfDay(tt.in); got != tt.want {
			t.Errorf("FormatTimeOfDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSlotLabel(t *testing.T) {
	start := time.Date(2024, 1, 2, 14, 5, 0, 0, time.UTC)
	slot := model.TimeSlot{Start: start, End: start.Add(45 * time.Minute)}

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name  string
		slot  model.TimeSlot
		prefs policy.Preferences
		want  string
	}{
		{"12h utc", slot, policy.Preferences{Location: time.UTC}, "2:05 PM - 2:50 PM"},
		{"24h utc", slot, policy.Preferences{Location: time.UTC, Clock24h: true}, "14:05 - 14:50"},
		{"24h berlin", slot, policy.Preferences{Location: berlin, Clock24h: true}, "15:05 - 15:50"},
		{"nil location", slot, policy.Preferences{}, "2:05 PM - 2:50 PM"},
		{"missing start", model.TimeSlot{End: start}, policy.Preferences{}, "Invalid time"},
		{"missing end", model.TimeSlot{Start: start}, policy.Preferences{}, "Invalid time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.FormatSlotLabel(tt.slot, tt.prefs); got != tt.want {
				t.Errorf("FormatSlotLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
