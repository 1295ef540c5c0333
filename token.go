package llmsfull

import "context"

// TokenCounter counts tokens in text for a specific model.
// Used to report approximate corpus size after a build.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
