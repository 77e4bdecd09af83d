package domain

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseModelResponse_FullJSON(t *testing.T) {
	text := `Sure, here is the assessment:
{"risk_level":"Very High","description":"River delta","recommendations":["Relocate valuables","Install barriers"],"elevation":3.2,"distance_from_water":45.0,"analysis":"Low-lying delta terrain"}`

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, "Very High", a.RiskLevel)
	assert.Equal(t, "River delta", a.Description)
	assert.Equal(t, []string{"Relocate valuables", "Install barriers"}, a.Recommendations)
	assert.Equal(t, 3.2, a.Elevation)
	assert.Equal(t, 45.0, a.DistanceFromWater)
	assert.Equal(t, "Low-lying delta terrain", a.Analysis)
}

func TestParseModelResponse_MissingFieldsTakeDefaults(t *testing.T) {
	text := `Here you go: {"risk_level":"High","elevation":12.5}`

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, "High", a.RiskLevel)
	assert.Equal(t, 12.5, a.Elevation)
	assert.Equal(t, DefaultDescription, a.Description)
	assert.Equal(t, DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, DefaultDistance, a.DistanceFromWater)
	assert.Equal(t, DefaultAnalysis, a.Analysis)
}

func TestParseModelResponse_MarkdownFencedJSON(t *testing.T) {
	text := "```json\n{\"risk_level\":\"Low\",\"analysis\":\"fenced\"}\n```"

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, "Low", a.RiskLevel)
	assert.Equal(t, "fenced", a.Analysis)
}

func TestParseModelResponse_NoBraces(t *testing.T) {
	text := "The flood risk here is moderate. Stay alert."

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, text, a.Analysis, "raw text should be preserved verbatim")
	assert.Equal(t, DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, DefaultDescription, a.Description)
	assert.Equal(t, DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, DefaultElevation, a.Elevation)
	assert.Equal(t, DefaultDistance, a.DistanceFromWater)
}

func TestParseModelResponse_UnparseableSpanFallsBack(t *testing.T) {
	text := `{"risk_level": "High", "elevation": not-a-number}`

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, DefaultFallback(), a, "broken JSON should yield the default fallback, not raw text")
}

func TestParseModelResponse_MultiObjectSpanFallsBack(t *testing.T) {
	// The span runs from the first '{' to the last '}', so two objects form
	// one invalid span. That is the documented compatibility behavior.
	text := `{"risk_level":"Low"} and also {"risk_level":"High"}`

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, DefaultFallback(), a)
}

func TestParseModelResponse_WrongFieldTypesTakeDefaults(t *testing.T) {
	text := `{"risk_level":7,"recommendations":"not a list","elevation":"tall"}`

	a := ParseModelResponse(text, discardLogger())

	assert.Equal(t, DefaultRiskLevel, a.RiskLevel)
	assert.Equal(t, DefaultRecommendations(), a.Recommendations)
	assert.Equal(t, DefaultElevation, a.Elevation)
}

func TestParseModelResponse_EmptyRecommendationsPreserved(t *testing.T) {
	text := `{"recommendations":[]}`

	a := ParseModelResponse(text, discardLogger())

	assert.NotNil(t, a.Recommendations)
	assert.Empty(t, a.Recommendations)
}

func TestParseModelResponse_EmptyText(t *testing.T) {
	a := ParseModelResponse("", discardLogger())

	assert.Equal(t, "", a.Analysis)
	assert.Equal(t, DefaultRiskLevel, a.RiskLevel)
}
