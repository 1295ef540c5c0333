package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriter_Rewrite_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	rewriter := gemini.NewRewriter(nil) // nil client ok for this test

	_, err := rewriter.Rewrite(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, llmsfull.EINVALID, llmsfull.ErrorCode(err))
	assert.Contains(t, llmsfull.ErrorMessage(err), "text required")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, *config.Temperature, 0.001)
}

func TestBuildConfig_BoundsOutputTokens(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	assert.Equal(t, int32(2000), config.MaxOutputTokens)
}

func TestBuildRewritePrompt_ContainsRawText(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildRewritePrompt("The client retries failed requests.")

	assert.Contains(t, prompt, "Raw documentation:\nThe client retries failed requests.")
}

func TestBuildRewritePrompt_ContainsTaskInstructions(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildRewritePrompt("text")

	assert.Contains(t, prompt, "optimizing technical documentation for AI training")
	assert.Contains(t, prompt, "TASK:")
	assert.Contains(t, prompt, "Summarize key points while preserving important technical details.")
	assert.Contains(t, prompt, "Optimized output:")
}
