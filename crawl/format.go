package crawl

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionTitle derives a human-readable section title from a page URL by
// stripping the base origin and the filter segment, replacing hyphens with
// spaces, and title-casing the remainder. Falls back to the raw URL when
// nothing readable remains (e.g., the base URL itself).
func SectionTitle(rawURL, baseURL, filterPath string) string {
	rest := strings.Trim(strings.TrimPrefix(rawURL, baseURL), "/")

	if filterPath != "" {
		if idx := strings.Index(rest, filterPath); idx != -1 {
			rest = strings.Trim(rest[idx+len(filterPath):], "/")
		}
	}

	if rest == "" {
		return rawURL
	}

	rest = strings.ReplaceAll(rest, "-", " ")
	return cases.Title(language.English).String(rest)
}

// FormatBytes formats a byte count in human-readable form.
func FormatBytes(bytes int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats a token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
