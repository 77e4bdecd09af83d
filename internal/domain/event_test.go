package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNewAssessmentEvent(t *testing.T) {
	frozen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	event := NewAssessmentEvent("coordinates", "High", true, 20, -80)

	assert.Equal(t, "coordinates", event.Kind)
	assert.Equal(t, "High", event.RiskLevel)
	assert.True(t, event.Simulated)
	assert.Equal(t, 20.0, event.Lat)
	assert.Equal(t, -80.0, event.Lon)
	assert.Equal(t, frozen, event.At)
	assert.Len(t, event.ID, 16)
}

func TestNewAssessmentEvent_DeterministicID(t *testing.T) {
	frozen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	a := NewAssessmentEvent("coordinates", "Low", false, 45, -75)
	b := NewAssessmentEvent("coordinates", "Low", false, 45, -75)
	c := NewAssessmentEvent("image", "Low", false, 45, -75)

	assert.Equal(t, a.ID, b.ID, "same inputs and time should produce the same ID")
	assert.NotEqual(t, a.ID, c.ID)
}
