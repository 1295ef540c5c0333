package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/llmsfull"
)

// Builder orchestrates a corpus build. Execution is strictly sequential:
// each render, extraction, and rewrite blocks the pipeline until it
// completes or fails. Page-level failures are contained (the URL is
// skipped); only URL set resolution failures abort the build.
type Builder struct {
	Source    llmsfull.URLSource
	Pages     llmsfull.PageCache
	Fetcher   llmsfull.Fetcher
	Extractor llmsfull.Extractor

	// Rewriter is optional. When set, extracted text is passed through it
	// and any error falls open to the original text.
	Rewriter llmsfull.Rewriter

	// Tokens is optional. When set, the final corpus token count is
	// reported in the Result.
	Tokens llmsfull.TokenCounter

	// Limiter is optional politeness rate limiting between fetches.
	Limiter llmsfull.DomainLimiter

	// RetryDelays configures fetch retry backoff. Nil uses the defaults.
	RetryDelays []time.Duration
}

// Result holds the outcome of a corpus build.
type Result struct {
	Pages   int // sections emitted
	Skipped int // pages with no extractable content
	Failed  int // pages whose fetch failed after retries
	Bytes   int
	Tokens  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a build.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressRetrying
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a corpus build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Attempt   int // retry attempt number, set on ProgressRetrying
	Error     error
}

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build resolves the URL set and assembles the corpus. The returned corpus
// may be empty (all pages skipped); callers decide whether to write output.
// Resolution failure is the only fatal error path.
func (b *Builder) Build(ctx context.Context, baseURL, filterPath string, progress ProgressFunc) (*llmsfull.Corpus, *Result, error) {
	urls, err := b.Source.Resolve(ctx, baseURL, filterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving URL set: %w", err)
	}

	corpus := &llmsfull.Corpus{BaseURL: baseURL, FilterPath: filterPath}
	result := &Result{}
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var onRetry RetryFunc
	if progress != nil {
		onRetry = func(url string, attempt int, err error) {
			progress(ProgressEvent{Type: ProgressRetrying, Total: total, URL: url, Attempt: attempt, Error: err})
		}
	}

	fetchText := func(ctx context.Context, pageURL string) (string, error) {
		html, err := FetchWithRetryDelays(ctx, pageURL, b.Fetcher.Fetch, onRetry, delays)
		if err != nil {
			return "", err
		}
		return b.Extractor.Extract(html)
	}

	for i, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		if b.Limiter != nil {
			if u, err := url.Parse(pageURL); err == nil {
				if err := b.Limiter.Wait(ctx, u.Host); err != nil {
					return nil, nil, err
				}
			}
		}

		text, err := b.Pages.GetOrFetch(ctx, pageURL, fetchText)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, URL: pageURL, Error: err})
			}
			continue
		}
		if text == "" {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, URL: pageURL})
			}
			continue
		}

		body := text
		if b.Rewriter != nil {
			// Fail open: any rewrite error keeps the extracted text.
			if rewritten, err := b.Rewriter.Rewrite(ctx, text); err == nil {
				body = rewritten
			}
		}

		corpus.Sections = append(corpus.Sections, llmsfull.Section{
			Title: SectionTitle(pageURL, baseURL, filterPath),
			URL:   pageURL,
			Body:  body,
		})
		result.Pages++
		result.Bytes += len(body)

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: pageURL})
		}
	}

	if b.Tokens != nil && !corpus.Empty() {
		if n, err := b.Tokens.CountTokens(ctx, corpus.Render()); err == nil {
			result.Tokens = n
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return corpus, result, nil
}
