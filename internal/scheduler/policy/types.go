package policy

import (
	"time"

	"task-scheduling-advisor/internal/model"
)

// Status is the presentation state of a task's recommendations.
type Status string

const (
	StatusFetching         Status = "FETCHING"
	StatusReady            Status = "READY"
	StatusInsufficientData Status = "INSUFFICIENT_DATA"
	StatusFailed           Status = "FAILED"
)

const (
	MessageInsufficientData = "Not enough completion history yet. Complete more tasks of this type to get time recommendations."
	MessageUnavailable      = "Recommendations unavailable"
)

// Config holds the policy constants.
type Config struct {
	ConfidenceThreshold float64 // below this nothing actionable is shown
	MaxSlots            int     // slots exposed to the caller
	MaxPayloadSlots     int     // valid slots kept from a provider payload
}

// DefaultConfig returns the product defaults: 0.30 threshold, 4 slots shown, 10 kept.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.30,
		MaxSlots:            4,
		MaxPayloadSlots:     10,
	}
}

// Preferences is the user's display configuration, passed in explicitly.
type Preferences struct {
	Location        *time.Location
	Clock24h        bool
	DefaultDuration int // minutes
}

// DefaultPreferences renders in UTC on a 12h clock.
func DefaultPreferences() Preferences {
	return Preferences{
		Location:        time.UTC,
		DefaultDuration: model.DefaultEstimatedDuration,
	}
}

// Slot is a presentable time slot.
type Slot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Label           string
}

// Presentation is the decision-ready view of a recommendation.
// Only READY presentations carry slots and best-time guidance.
type Presentation struct {
	Status             Status
	TaskID             string
	Confidence         float64
	BestTimeOfDay      model.TimeOfDay
	BestTimeOfDayLabel string
	BestDayOfWeek      int
	BestDayOfWeekLabel string
	Slots              []Slot
	Message            string
}

// Actionable reports whether the presentation carries slots to choose from.
func (p Presentation) Actionable() bool {
	return p.Status == StatusReady
}
