package answer

import "context"

// ContextRetriever supplies the grounding context for a question. An empty
// string means "no grounding available" and is not an error.
type ContextRetriever interface {
	Retrieve(ctx context.Context, question, subject string, limit int) string
}

// Generator is the outbound text-generation boundary.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
