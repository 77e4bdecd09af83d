package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// AssessmentEvent is the record published to the optional events topic after
// every completed analysis. It is an operational audit trail for downstream
// analytics, not a persistence layer: the service itself never reads it back.
type AssessmentEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // "coordinates" or "image"
	RiskLevel string    `json:"risk_level"`
	Simulated bool      `json:"simulated"` // true when the record came from a fallback
	Lat       float64   `json:"lat,omitempty"`
	Lon       float64   `json:"lon,omitempty"`
	At        time.Time `json:"at"`
}

// NewAssessmentEvent builds an event stamped with the active clock.
func NewAssessmentEvent(kind, riskLevel string, simulated bool, lat, lon float64) AssessmentEvent {
	at := Now()
	return AssessmentEvent{
		ID:        generateEventID(kind, lat, lon, at),
		Kind:      kind,
		RiskLevel: riskLevel,
		Simulated: simulated,
		Lat:       lat,
		Lon:       lon,
		At:        at,
	}
}

// generateEventID produces a deterministic short ID from the event's key
// fields, so replayed or duplicated publishes are detectable downstream.
func generateEventID(kind string, lat, lon float64, at time.Time) string {
	input := fmt.Sprintf("%s|%.4f|%.4f|%d", kind, lat, lon, at.UnixNano())
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}
