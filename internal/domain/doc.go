// Package domain models flood risk assessments produced by a generative model.
//
// # Response Normalization
//
// The model returns free text that usually, but not reliably, contains a JSON
// object with the six assessment fields. [ParseModelResponse] is the single
// termination point for all model-output irregularities:
//
//	JSON span found and parses  →  field values, defaults for missing keys
//	no '{'/'}' span at all      →  defaults, raw text preserved in Analysis
//	span found but unparseable  →  [DefaultFallback] record
//
// The span is the greedy match from the first '{' to the last '}' — not a
// balanced-brace match. This is a compatibility contract: replies containing
// multiple JSON objects or trailing braces deliberately fail parsing and land
// on the fallback path.
//
// # Fallback Records
//
// [CoordinateFallback] and [ImageFallback] produce synthetic records when the
// model call itself fails. The coordinate variant selects a risk level from a
// fixed latitude/longitude rule:
//
//	lat > 40 and lon < -70  →  Low
//	lat < 30 and lon > -90  →  High
//	otherwise               →  Medium
//
// The rule is geographically arbitrary. It is preserved verbatim for
// compatibility with existing consumers; do not correct it.
//
// # Rasters
//
// Uploaded terrain images are decoded (JPEG, PNG, GIF), resized when wider
// than 1000px, and re-encoded as 3-channel JPEG before model submission. See
// [NormalizeRaster].
package domain
