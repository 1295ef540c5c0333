package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/llmsfull/cmd/llmsfull"
	"github.com/fwojciec/llmsfull/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("persists the URL list for the key", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "urls.txt")
		require.NoError(t, os.WriteFile(source, []byte(
			"https://example.com/docs/intro\n"+
				"\n"+
				"https://example.com/docs/guide\n"), 0644))

		lists := fs.NewURLListStore(dir)
		cmd := &main.SeedCmd{
			Source:     source,
			BaseURL:    "https://example.com/",
			FilterPath: "/docs/",
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Lists:  lists,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Seeded 2 URLs")

		// Trailing slash on base-url and slashes around filter-path are
		// normalized so the list lands under the same key build uses.
		got, err := lists.Load(testContext(), "https://example.com", "docs")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/guide",
		}, got)

		_, err = lists.Load(testContext(), "https://example.com", "/docs/")
		require.Error(t, err, "the unstripped filter is not a key")
	})

	t.Run("returns error for a missing source file", func(t *testing.T) {
		t.Parallel()

		cmd := &main.SeedCmd{
			Source:  filepath.Join(t.TempDir(), "missing.txt"),
			BaseURL: "https://example.com",
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Lists:  fs.NewURLListStore(t.TempDir()),
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
