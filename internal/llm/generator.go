// Package llm defines the text-generation contract consumed by the
// interview stage controller.
package llm

import "context"

// Generator produces one assistant reply per call. Implementations bound
// each request with their own timeout and never retry; failure handling is
// the caller's concern.
type Generator interface {
	// Generate returns text for the user prompt, steered by the system
	// prompt sent alongside it.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
