// Package llm wraps the model provider behind a minimal interface:
// free-form text completions and schema-validated structured output.
// Callers never see provider SDK types.
package llm

import "context"

// Request is a single model call. Model and MaxTokens fall back to the
// configured defaults when zero.
type Request struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// Client is the model interface consumed by the daemon's loops.
type Client interface {
	// Text returns the model's text completion for the request.
	Text(ctx context.Context, req Request) (string, error)

	// Structured asks the model for a JSON object, validates it
	// against the given JSON Schema, and decodes it into out.
	// Schema violations surface as KindValidation errors.
	Structured(ctx context.Context, req Request, schema []byte, out any) error
}
