package models

import "encoding/json"

// Tier buckets an intensity score for display. It is always derived from
// the current intensity, never stored alongside it.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func TierFor(intensity float64) Tier {
	switch {
	case intensity >= TierHighThreshold:
		return TierHigh
	case intensity >= TierMediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

type EventCategory string

const (
	EventConcert    EventCategory = "concert"
	EventSports     EventCategory = "sports"
	EventConvention EventCategory = "convention"
	EventNightlife  EventCategory = "nightlife"
	EventBusiness   EventCategory = "business"
)

// Event is a scheduled happening attached to a hotspot. It is owned by
// exactly one hotspot and replaced together with it.
type Event struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	Venue              string        `json:"venue"`
	Time               string        `json:"time"`
	ExpectedAttendance int           `json:"expectedAttendance"`
	Category           EventCategory `json:"type"`
}

// HotSpot is a weighted demand point. Intensity is a score in [0,100];
// canvas geometry is never stored here, the renderer keeps it in its own
// side table.
type HotSpot struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Location
	Intensity         float64 `json:"concentration"`
	EstimatedEarnings string  `json:"estimatedEarnings"`
	PeakHours         string  `json:"peakHours"`
	Events            []Event `json:"events,omitempty"`
}

func (h HotSpot) Tier() Tier {
	return TierFor(h.Intensity)
}

// MarshalJSON emits the derived tier under "type" so serialized hotspots
// never carry a stale bucket.
func (h HotSpot) MarshalJSON() ([]byte, error) {
	type hotSpot HotSpot
	return json.Marshal(struct {
		hotSpot
		Tier Tier `json:"type"`
	}{hotSpot(h), h.Tier()})
}
