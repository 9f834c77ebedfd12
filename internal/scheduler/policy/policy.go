package policy

import (
	"time"

	"task-scheduling-advisor/internal/model"
)

// Policy turns validated recommendations into presentations.
// It holds no mutable state and is safe for concurrent use.
type Policy struct {
	cfg   Config
	prefs Preferences
}

// New creates a Policy. Zero or out-of-range config values fall back to
// DefaultConfig, so the zero Config gates at 0.30.
func New(cfg Config, prefs Preferences) Policy {
	def := DefaultConfig()
	if cfg.ConfidenceThreshold <= 0 || cfg.ConfidenceThreshold > 1 {
		cfg.ConfidenceThreshold = def.ConfidenceThreshold
	}
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = def.MaxSlots
	}
	if cfg.MaxPayloadSlots <= 0 {
		cfg.MaxPayloadSlots = def.MaxPayloadSlots
	}
	if prefs.Location == nil {
		prefs.Location = time.UTC
	}
	if prefs.DefaultDuration <= 0 {
		prefs.DefaultDuration = model.DefaultEstimatedDuration
	}
	return Policy{cfg: cfg, prefs: prefs}
}

// Config returns the effective policy constants.
func (p Policy) Config() Config { return p.cfg }

// Preferences returns the effective display preferences.
func (p Policy) Preferences() Preferences { return p.prefs }

// Evaluate gates rec on confidence and selects the slots to present, in provider order.
func (p Policy) Evaluate(rec model.Recommendation) Presentation {
	if rec.Confidence < p.cfg.ConfidenceThreshold {
		return Presentation{
			Status:     StatusInsufficientData,
			TaskID:     rec.TaskID,
			Confidence: rec.Confidence,
			Slots:      []Slot{},
			Message:    MessageInsufficientData,
		}
	}

	n := len(rec.RecommendedTimeSlots)
	if n > p.cfg.MaxSlots {
		n = p.cfg.MaxSlots
	}
	slots := make([]Slot, 0, n)
	for _, s := range rec.RecommendedTimeSlots[:n] {
		slots = append(slots, Slot{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes(),
			Label:           FormatSlotLabel(s, p.prefs),
		})
	}

	return Presentation{
		Status:             StatusReady,
		TaskID:             rec.TaskID,
		Confidence:         rec.Confidence,
		BestTimeOfDay:      rec.BestTimeOfDay,
		BestTimeOfDayLabel: FormatTimeOfDay(rec.BestTimeOfDay),
		BestDayOfWeek:      rec.BestDayOfWeek,
		BestDayOfWeekLabel: FormatDayOfWeek(rec.BestDayOfWeek),
		Slots:              slots,
	}
}

// Present normalizes raw and evaluates it. A malformed payload degrades to
// a FAILED presentation alongside the validation error.
func (p Policy) Present(raw map[string]any) (Presentation, error) {
	rec, err := p.Normalize(raw)
	if err != nil {
		taskID, _ := toID(raw[fieldTaskID])
		return Unavailable(taskID), err
	}
	return p.Evaluate(rec), nil
}

// Unavailable is the FAILED presentation for taskID.
func Unavailable(taskID string) Presentation {
	return Presentation{
		Status:  StatusFailed,
		TaskID:  taskID,
		Slots:   []Slot{},
		Message: MessageUnavailable,
	}
}
