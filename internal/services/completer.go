package services

import "context"

// Completer sends one system prompt and one user message to a language model
// and returns the reply text.
//
// Implementations return *UpstreamError for non-success statuses,
// ErrEmptyCompletion when the reply has no text, and ErrNotConfigured when no
// credential was supplied. They never retry.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
	Configured() bool
}
