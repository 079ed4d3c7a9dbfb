package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/assist"
)

// Ensure LoggingInstitutionLister implements assist.InstitutionLister.
var _ assist.InstitutionLister = (*LoggingInstitutionLister)(nil)

// LoggingInstitutionLister wraps an InstitutionLister with logging.
// Each dropdown attempt is logged separately.
type LoggingInstitutionLister struct {
	next   assist.InstitutionLister
	logger *slog.Logger
}

// NewLoggingInstitutionLister creates a new LoggingInstitutionLister.
func NewLoggingInstitutionLister(next assist.InstitutionLister, logger *slog.Logger) *LoggingInstitutionLister {
	return &LoggingInstitutionLister{next: next, logger: logger}
}

// ListInstitutions delegates to the wrapped lister and logs the outcome.
func (l *LoggingInstitutionLister) ListInstitutions(ctx context.Context, url string) (lists *assist.InstitutionLists, err error) {
	defer func(begin time.Time) {
		if lists != nil {
			for _, a := range lists.Attempts {
				level := slog.LevelInfo
				if a.Status == assist.DropdownFailed {
					level = slog.LevelWarn
				}
				l.logger.Log(ctx, level, "dropdown",
					"name", a.Name,
					"selector", a.Selector,
					"status", string(a.Status),
					"count", len(a.Options),
					"err", a.Err,
				)
			}
		}
		l.logger.Info("list institutions",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListInstitutions(ctx, url)
}
