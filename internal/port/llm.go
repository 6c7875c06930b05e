package port

import "context"

// LLM represents a language model for text generation.
type LLM interface {
	// Generate generates text based on the prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateWithSystem generates text with a system prompt.
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}

// DocGenerator produces a documentation comment for a method.
type DocGenerator interface {
	// Generate returns the comment text for the method body, or an error
	// when no comment could be produced.
	Generate(ctx context.Context, req DocRequest) (string, error)
}

// DocRequest carries what the generator knows about a method.
type DocRequest struct {
	File        string
	Method      string
	Hierarchy   string
	Code        string
	Description string
}
