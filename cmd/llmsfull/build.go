package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/crawl"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	filter := strings.Trim(c.FilterPath, "/")

	fmt.Fprintf(deps.Stdout, "Gathering URLs from %s...\n", c.BaseURL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (no content, skipped)\n", event.Completed, event.Total, event.URL)
		case crawl.ProgressRetrying:
			fmt.Fprintf(deps.Stderr, "  retry %s (attempt %d): %v\n", event.URL, event.Attempt, event.Error)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %v\n", event.Completed, event.Total, event.URL, event.Error)
		}
	}

	corpus, result, err := deps.Builder.Build(deps.Ctx, c.BaseURL, filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsfull.ErrorMessage(err))
		return err
	}

	if len(corpus.Sections) == 0 && result.Failed == 0 && result.Skipped == 0 {
		fmt.Fprintf(deps.Stdout, "No URLs found under %q. Exiting.\n", filter)
		return nil
	}

	rendered := corpus.Render()
	if rendered == "" {
		fmt.Fprintln(deps.Stdout, "No content extracted. The website might have additional protections.")
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(rendered), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documentation saved to %s (%d pages, %s, %s)\n",
		c.Output, result.Pages, crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages skipped (no content)\n", result.Skipped)
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages failed\n", result.Failed)
	}

	return nil
}
