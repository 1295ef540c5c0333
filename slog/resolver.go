package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmsfull"
)

// Ensure LoggingURLSource implements llmsfull.URLSource.
var _ llmsfull.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with logging.
type LoggingURLSource struct {
	next   llmsfull.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next llmsfull.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Resolve delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Resolve(ctx context.Context, baseURL, filterPath string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url resolution",
			"base_url", baseURL,
			"filter_path", filterPath,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, baseURL, filterPath)
}
