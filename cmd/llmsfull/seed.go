package main

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the seed command. It persists a newline-separated URL file
// as the resolved list for (base-url, filter-path), so a later build skips
// hub discovery entirely.
func (c *SeedCmd) Run(deps *Dependencies) error {
	b, err := os.ReadFile(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var urls []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}

	baseURL := strings.TrimRight(c.BaseURL, "/")
	filter := strings.Trim(c.FilterPath, "/")
	if err := deps.Lists.Save(deps.Ctx, baseURL, filter, urls); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Seeded %d URLs for %s (filter %q)\n", len(urls), baseURL, filter)
	return nil
}
