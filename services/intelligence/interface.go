package ai

import "context"

// TextGenerator produces prose from a prompt. Callers treat any failure as
// "no enrichment available"; it is never on a request's critical path.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
