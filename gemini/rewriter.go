// Package gemini implements text rewriting and token counting using the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/llmsfull"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewClient creates a genai client authenticated with the Gemini API.
// The API key is read from the GEMINI_API_KEY environment variable when
// apiKey is empty.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Ensure Rewriter implements llmsfull.Rewriter at compile time.
var _ llmsfull.Rewriter = (*Rewriter)(nil)

// Rewriter implements llmsfull.Rewriter using Google Gemini.
type Rewriter struct {
	client *genai.Client
}

// NewRewriter creates a new Rewriter.
func NewRewriter(client *genai.Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite restructures extracted documentation text for LLM consumption.
// Errors are returned as-is; the caller decides whether to fall back to
// the original text.
func (r *Rewriter) Rewrite(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", llmsfull.Errorf(llmsfull.EINVALID, "text required")
	}

	prompt := BuildRewritePrompt(text)
	config := BuildConfig()

	result, err := r.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", llmsfull.Errorf(llmsfull.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for rewrite calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: 2000,
	}
}

// BuildRewritePrompt builds the prompt asking the model to restructure raw
// documentation text.
func BuildRewritePrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("You are optimizing technical documentation for AI training.\n\n")
	sb.WriteString("TASK:\n")
	sb.WriteString("- Summarize key points while preserving important technical details.\n")
	sb.WriteString("- Extract and format API methods, parameters, and example code properly.\n")
	sb.WriteString("- Ensure clarity, remove redundant or unnecessary text.\n")
	sb.WriteString("- Format output to be easily understood by Large Language Models (LLMs).\n\n")
	fmt.Fprintf(&sb, "Raw documentation:\n%s\n\n", text)
	sb.WriteString("Optimized output:")
	return sb.String()
}
