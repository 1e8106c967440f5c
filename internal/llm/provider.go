package llm

import "context"

// Provider is the abstraction over an external text-completion service.
// Implementations send a role-tagged prompt and return the generated text.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// User is the instruction prompt.
	User string

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float32

	// MaxTokens caps the length of the generated output.
	MaxTokens int
}
