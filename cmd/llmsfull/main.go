package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/crawl"
	"github.com/fwojciec/llmsfull/fs"
	"github.com/fwojciec/llmsfull/gemini"
	"github.com/fwojciec/llmsfull/goquery"
	llmshttp "github.com/fwojciec/llmsfull/http"
	"github.com/fwojciec/llmsfull/readability"
	"github.com/fwojciec/llmsfull/rod"
	llmslog "github.com/fwojciec/llmsfull/slog"
	"github.com/fwojciec/llmsfull/sqlite"
	"github.com/fwojciec/llmsfull/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when the sqlite cache backend is selected.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmsfull"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmsfull --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "seed" {
		lists, _, err := m.openStores(cli.Seed.Cache, cli.Seed.CacheDir)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Lists = lists
	}

	if cmd == "build" {
		cli.Build.BaseURL = strings.TrimRight(cli.Build.BaseURL, "/")

		lists, pages, err := m.openStores(cli.Build.Cache, cli.Build.CacheDir)
		if err != nil {
			return err
		}
		defer m.Close()

		var fetcher llmsfull.Fetcher
		if cli.Build.Static {
			fetcher = llmshttp.NewFetcher(llmshttp.WithTimeout(time.Duration(cli.Build.Timeout) * time.Second))
		} else {
			fetcher, err = rod.NewFetcher(
				rod.WithFetchTimeout(time.Duration(cli.Build.Timeout)*time.Second),
				rod.WithSettleDelay(time.Duration(cli.Build.Settle)*time.Second),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or run with --static")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		}
		defer fetcher.Close()
		fetcher = llmslog.NewLoggingFetcher(fetcher, logger)

		var extractor llmsfull.Extractor
		switch cli.Build.Engine {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		case "readability":
			extractor = readability.NewExtractor()
		default:
			var opts []goquery.Option
			if cli.Build.CustomSelector != "" {
				opts = append(opts, goquery.WithCustomSelector(cli.Build.CustomSelector))
			}
			extractor = goquery.NewExtractor(opts...)
		}

		var rewriter llmsfull.Rewriter
		if !cli.Build.NoRewrite {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY not set; skipping the rewrite pass. Get a key at https://aistudio.google.com/apikey")
			} else {
				client, err := gemini.NewClient(ctx, apiKey)
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
					return fmt.Errorf("failed to connect to Gemini API: %w", err)
				}
				rewriter = llmslog.NewLoggingRewriter(gemini.NewRewriter(client), logger)
			}
		}

		var tokens llmsfull.TokenCounter
		if tc, err := gemini.NewTokenCounter(); err == nil {
			tokens = tc
		}

		hubURL := ""
		if cli.Build.HubPath != "" {
			hubURL = cli.Build.BaseURL + "/" + strings.Trim(cli.Build.HubPath, "/")
		}

		source := llmslog.NewLoggingURLSource(&crawl.Resolver{
			Discoverer: &crawl.Discoverer{Fetcher: fetcher, BaseURL: cli.Build.BaseURL},
			Lists:      lists,
			HubURL:     hubURL,
		}, logger)

		deps.Builder = &crawl.Builder{
			Source:    source,
			Pages:     pages,
			Fetcher:   fetcher,
			Extractor: extractor,
			Rewriter:  rewriter,
			Tokens:    tokens,
			Limiter:   crawl.NewDomainLimiter(cli.Build.RPS),
		}
	}

	return kongCtx.Run(deps)
}

// openStores opens the page cache and URL-list store for the selected
// backend. The fs backend uses one file per entry under the cache dir; the
// sqlite backend keeps both in a single database file.
func (m *Main) openStores(backend, dir string) (llmsfull.URLListStore, llmsfull.PageCache, error) {
	if backend == "sqlite" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
		m.DB = sqlite.NewDB(filepath.Join(dir, "llmsfull.db"))
		if err := m.DB.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		return sqlite.NewURLListStore(m.DB), sqlite.NewPageCache(m.DB), nil
	}
	return fs.NewURLListStore(dir), fs.NewPageCache(dir), nil
}
