package model

import "time"

// TimeSlot is a candidate window for working on a task. End is after Start.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DurationMinutes returns the slot length in whole minutes.
func (s TimeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// Valid reports whether both ends are set and End is after Start.
func (s TimeSlot) Valid() bool {
	return !s.Start.IsZero() && !s.End.IsZero() && s.End.After(s.Start)
}

// Recommendation is a read-only projection returned by the recommendation provider.
type Recommendation struct {
	TaskID               string
	BestTimeOfDay        TimeOfDay
	BestDayOfWeek        int // 0 = Sunday; -1 when missing or outside 0-6
	Confidence           float64
	RecommendedTimeSlots []TimeSlot // ranked best-first by the provider
}
