package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/assist"
)

// Ensure LoggingExtractor implements assist.Extractor.
var _ assist.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of per-category counts.
type LoggingExtractor struct {
	next   assist.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next assist.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string, opts assist.ExtractOptions) *assist.ExtractionResult {
	begin := time.Now()
	result := e.next.Extract(html, opts)
	e.logger.Info("extract",
		"bytes", len(html),
		"headings", len(result.Headings),
		"links", len(result.Links),
		"paragraphs", len(result.Paragraphs),
		"labels", len(result.FormLabels),
		"fields", len(result.FormFields),
		"raw_text", len([]rune(result.RawText)),
		"duration", time.Since(begin),
	)
	return result
}
