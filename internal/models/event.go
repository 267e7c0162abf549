package models

import "time"

// EventType names the synthetic interventions injected into generated
// history.
type EventType string

const (
	EventWatering    EventType = "WATERING"
	EventMaintenance EventType = "MAINTENANCE"
)

// Event is one intervention overlaid on a generated series. Watering events
// boost moisture (and some humidity) and decay away with a half-life of
// DecaySeconds; maintenance events pull the wall back toward its healthy
// baseline and fade out linearly across DecaySeconds. Events exist only
// inside the series that generated them, they are never stored.
type Event struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Type         EventType `json:"type"`
	Magnitude    float64   `json:"magnitude"`
	DecaySeconds int       `json:"decay_seconds"`
}
