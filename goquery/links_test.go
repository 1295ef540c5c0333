package goquery_test

import (
	"testing"

	"github.com/fwojciec/llmsfull/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHubLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps only links under the base origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://example.com/docs/guide/intro">Intro</a>
<a href="https://other.com/docs">Elsewhere</a>
<a href="/docs/guide/setup">Setup</a>
</body></html>`

		links, err := goquery.ExtractHubLinks(html, "https://example.com/docs", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/guide/intro",
			"https://example.com/docs/guide/setup",
		}, links)
	})

	t.Run("deduplicates by exact string equality", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/docs/x">One</a>
<a href="/docs/x">Two</a>
<a href="/docs/x/">Trailing slash is a distinct URL</a>
</body></html>`

		links, err := goquery.ExtractHubLinks(html, "https://example.com", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/x",
			"https://example.com/docs/x/",
		}, links)
	})

	t.Run("query strings and fragments are preserved verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/docs/api?version=2">Versioned</a>
<a href="/docs/api#auth">Anchored</a>
</body></html>`

		links, err := goquery.ExtractHubLinks(html, "https://example.com", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/api?version=2",
			"https://example.com/docs/api#auth",
		}, links)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="javascript:void(0)">JS</a>
<a href="mailto:docs@example.com">Mail</a>
<a href="/docs/guide">Guide</a>
</body></html>`

		links, err := goquery.ExtractHubLinks(html, "https://example.com", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/guide"}, links)
	})

	t.Run("no matching links yields empty set", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="https://other.com/x">External</a></body></html>`

		links, err := goquery.ExtractHubLinks(html, "https://example.com", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
