package domain

import "context"

// ModelClient is the generative model behind the analysis endpoints. The
// model is opaque: prompt (plus optional raster) in, free text out. Any error
// it returns — quota, network, content policy, empty reply — is converted to
// fallback data at the service boundary, never surfaced to callers.
type ModelClient interface {
	// GenerateText runs a text-only prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateVision runs a prompt against a normalized JPEG raster.
	GenerateVision(ctx context.Context, prompt string, jpeg []byte) (string, error)
}
