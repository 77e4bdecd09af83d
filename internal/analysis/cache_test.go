package analysis

import (
	"testing"

	"github.com/couchcryptid/flood-risk-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAssessmentCache_BasicGetPut(t *testing.T) {
	c := newAssessmentCache(3)

	c.put(30.0, -97.0, domain.RiskAssessment{RiskLevel: "Low"})
	c.put(45.0, -75.0, domain.RiskAssessment{RiskLevel: "High"})

	a, ok := c.get(30.0, -97.0)
	assert.True(t, ok)
	assert.Equal(t, "Low", a.RiskLevel)

	_, ok = c.get(0, 0)
	assert.False(t, ok)
}

func TestAssessmentCache_RoundedKeys(t *testing.T) {
	c := newAssessmentCache(3)

	c.put(30.26721, -97.74312, domain.RiskAssessment{RiskLevel: "Low"})

	// Coordinates within rounding distance share a key.
	a, ok := c.get(30.26722, -97.74311)
	assert.True(t, ok)
	assert.Equal(t, "Low", a.RiskLevel)

	// A fifth-decimal shift that crosses the rounding boundary does not.
	_, ok = c.get(30.2673, -97.7431)
	assert.False(t, ok)
}

func TestAssessmentCache_Eviction(t *testing.T) {
	c := newAssessmentCache(2)

	c.put(1, 1, domain.RiskAssessment{RiskLevel: "A"})
	c.put(2, 2, domain.RiskAssessment{RiskLevel: "B"})
	c.put(3, 3, domain.RiskAssessment{RiskLevel: "C"}) // evicts (1,1)

	_, ok := c.get(1, 1)
	assert.False(t, ok, "oldest entry should have been evicted")

	a, ok := c.get(2, 2)
	assert.True(t, ok)
	assert.Equal(t, "B", a.RiskLevel)

	a, ok = c.get(3, 3)
	assert.True(t, ok)
	assert.Equal(t, "C", a.RiskLevel)
}

func TestAssessmentCache_AccessPromotesEntry(t *testing.T) {
	c := newAssessmentCache(2)

	c.put(1, 1, domain.RiskAssessment{RiskLevel: "A"})
	c.put(2, 2, domain.RiskAssessment{RiskLevel: "B"})

	// Access (1,1) to promote it, then insert a third entry.
	c.get(1, 1)
	c.put(3, 3, domain.RiskAssessment{RiskLevel: "C"})

	_, ok := c.get(2, 2)
	assert.False(t, ok, "least recently used entry should have been evicted")

	_, ok = c.get(1, 1)
	assert.True(t, ok)
}

func TestAssessmentCache_UpdateExistingKey(t *testing.T) {
	c := newAssessmentCache(2)

	c.put(1, 1, domain.RiskAssessment{RiskLevel: "A"})
	c.put(1, 1, domain.RiskAssessment{RiskLevel: "B"})

	a, ok := c.get(1, 1)
	assert.True(t, ok)
	assert.Equal(t, "B", a.RiskLevel)
}
