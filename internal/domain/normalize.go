package domain

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// ParseModelResponse extracts a RiskAssessment from raw model text. It never
// fails: all model-output irregularities terminate here.
//
// The JSON span is the greedy match from the first '{' to the last '}' in the
// text, NOT a balanced-brace match. Multi-object or trailing-garbage replies
// therefore land on the fallback path. This matches the upstream contract;
// do not "upgrade" to balanced extraction, as that changes observable
// behavior on such inputs.
func ParseModelResponse(text string, logger *slog.Logger) RiskAssessment {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		a := defaultAssessment()
		a.Analysis = text
		return a
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		logger.Error("parse model response failed", "error", err)
		return DefaultFallback()
	}

	return RiskAssessment{
		RiskLevel:         stringOr(parsed, "risk_level", DefaultRiskLevel),
		Description:       stringOr(parsed, "description", DefaultDescription),
		Recommendations:   stringListOr(parsed, "recommendations", DefaultRecommendations()),
		Elevation:         floatOr(parsed, "elevation", DefaultElevation),
		DistanceFromWater: floatOr(parsed, "distance_from_water", DefaultDistance),
		Analysis:          stringOr(parsed, "analysis", DefaultAnalysis),
	}
}

// stringOr reads a string key, returning def when the key is missing or not a string.
func stringOr(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// floatOr reads a numeric key. JSON numbers decode as float64.
func floatOr(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}

// stringListOr reads an array key, keeping only string elements. Non-string
// elements are skipped rather than failing the whole record.
func stringListOr(m map[string]any, key string, def []string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
