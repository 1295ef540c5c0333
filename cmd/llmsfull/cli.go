package main

import (
	"context"
	"io"

	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Builder *crawl.Builder
	Lists   llmsfull.URLListStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Scrape a documentation site into a single llms-full.txt corpus"`
	Seed  SeedCmd  `cmd:"" help:"Persist a URL list from a text file, skipping hub discovery"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	BaseURL        string  `required:"" name:"base-url" help:"Base URL of the documentation site (e.g., https://mastra.ai)"`
	FilterPath     string  `name:"filter-path" help:"Path substring to keep (e.g., /docs/reference/)"`
	HubPath        string  `name:"hub-path" help:"Path of the hub page links are discovered from (default: base URL itself)"`
	CustomSelector string  `name:"custom-selector" help:"CSS selector tried before the extraction fallbacks"`
	Output         string  `short:"o" default:"llms-full.txt" help:"Output file path"`
	CacheDir       string  `name:"cache-dir" default:"tmp" help:"Cache directory for pages and URL lists"`
	Cache          string  `default:"fs" enum:"fs,sqlite" help:"Cache backend"`
	Engine         string  `default:"selector" enum:"selector,trafilatura,readability" help:"Content extraction engine"`
	Static         bool    `help:"Fetch with plain HTTP instead of a headless browser (no JS)"`
	Settle         int     `default:"3" help:"Seconds to wait after page load for client-side rendering"`
	Timeout        int     `default:"30" help:"Per-page fetch timeout in seconds"`
	RPS            float64 `name:"rps" default:"1" help:"Requests per second per domain"`
	NoRewrite      bool    `name:"no-rewrite" help:"Skip the LLM rewrite pass"`
}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct {
	Source     string `arg:"" help:"Text file with one URL per line"`
	BaseURL    string `required:"" name:"base-url" help:"Base URL the list belongs to"`
	FilterPath string `name:"filter-path" help:"Filter path the list belongs to"`
	CacheDir   string `name:"cache-dir" default:"tmp" help:"Cache directory for pages and URL lists"`
	Cache      string `default:"fs" enum:"fs,sqlite" help:"Cache backend"`
}
