package providers

import "context"

// CompletionRequest is a single-shot prompt to a language model.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// LanguageModelProvider returns raw model text. Callers must not assume the
// text has any particular structure.
type LanguageModelProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
