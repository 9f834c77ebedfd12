package policy

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"task-scheduling-advisor/internal/model"
)

// Payload field names sent by the recommendation provider.
const (
	fieldTaskID        = "taskId"
	fieldConfidence    = "confidence"
	fieldBestTimeOfDay = "bestTimeOfDay"
	fieldBestDayOfWeek = "bestDayOfWeek"
	fieldTimeSlots     = "recommendedTimeSlots"
	fieldSlotStart     = "start"
	fieldSlotEnd       = "end"
)

// Normalize validates an untyped provider payload and coerces defaults.
// A missing task id or a non-finite confidence rejects the payload; slots
// that cannot be parsed or whose end is not after their start are dropped.
func (p Policy) Normalize(raw map[string]any) (model.Recommendation, error) {
	if raw == nil {
		return model.Recommendation{}, fmt.Errorf("%w: empty payload", ErrMalformedRecommendation)
	}

	taskID, ok := toID(raw[fieldTaskID])
	if !ok {
		return model.Recommendation{}, fmt.Errorf("%w: %w", ErrMalformedRecommendation, ErrMissingTaskID)
	}

	confidence, ok := toFloat(raw[fieldConfidence])
	if !ok || math.IsNaN(confidence) || math.IsInf(confidence, 0) {
		return model.Recommendation{}, fmt.Errorf("%w: %w", ErrMalformedRecommendation, ErrInvalidConfidence)
	}

	rec := model.Recommendation{
		TaskID:               taskID,
		Confidence:           clamp(confidence, 0, 1),
		BestTimeOfDay:        model.TimeOfDayAny,
		BestDayOfWeek:        -1,
		RecommendedTimeSlots: []model.TimeSlot{},
	}

	if s, ok := raw[fieldBestTimeOfDay].(string); ok {
		rec.BestTimeOfDay = model.ParseTimeOfDay(s)
	}
	if d, ok := toFloat(raw[fieldBestDayOfWeek]); ok && d >= 0 && d <= 6 && d == math.Trunc(d) {
		rec.BestDayOfWeek = int(d)
	}

	rawSlots, _ := raw[fieldTimeSlots].([]any)
	for _, item := range rawSlots {
		if len(rec.RecommendedTimeSlots) >= p.cfg.MaxPayloadSlots {
			break
		}
		slot, ok := toSlot(item)
		if !ok {
			continue
		}
		rec.RecommendedTimeSlots = append(rec.RecommendedTimeSlots, slot)
	}

	return rec, nil
}

func toID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		id = strings.TrimSpace(id)
		return id, id != ""
	case json.Number:
		if i, err := id.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		f, err := id.Float64()
		if err != nil {
			return "", false
		}
		return integralID(f)
	case float64:
		return integralID(id)
	default:
		return "", false
	}
}

func integralID(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', 0, 64), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toSlot(v any) (model.TimeSlot, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return model.TimeSlot{}, false
	}
	start, ok := parseInstant(m[fieldSlotStart])
	if !ok {
		return model.TimeSlot{}, false
	}
	end, ok := parseInstant(m[fieldSlotEnd])
	if !ok {
		return model.TimeSlot{}, false
	}
	slot := model.TimeSlot{Start: start, End: end}
	return slot, slot.Valid()
}

func parseInstant(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
