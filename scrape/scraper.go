// Package scrape turns fetches and extractions into self-contained results.
// Failures to obtain a page never escape as errors: they become results
// carrying only an error message that names the target URL.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/assist"
)

// Scraper coordinates fetching and extraction for one URL at a time.
type Scraper struct {
	// Fetcher retrieves static HTML.
	Fetcher assist.Fetcher

	// Renderer retrieves HTML after JavaScript has run.
	Renderer assist.Fetcher

	Extractor    assist.Extractor
	Institutions assist.InstitutionLister
}

// Scrape fetches url without rendering and extracts a capped set of fields.
func (s *Scraper) Scrape(ctx context.Context, url string) *assist.ExtractionResult {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return &assist.ExtractionResult{Error: fmt.Sprintf("Failed to fetch %s: %v", url, err)}
	}

	result := s.Extractor.Extract(html, assist.LiveOptions())
	result.URL = url
	return result
}

// ScrapeRendered renders url in a browser and extracts every field,
// including aria labels and the visible text.
func (s *Scraper) ScrapeRendered(ctx context.Context, url string) *assist.ExtractionResult {
	html, err := s.Renderer.Fetch(ctx, url)
	if err != nil {
		return &assist.ExtractionResult{Error: fmt.Sprintf("Failed to scrape %s: %v", url, err)}
	}

	result := s.Extractor.Extract(html, assist.SnapshotOptions())
	result.URL = url
	return result
}

// ExtractSnapshot extracts every field from previously rendered HTML.
func (s *Scraper) ExtractSnapshot(html string) *assist.ExtractionResult {
	return s.Extractor.Extract(html, assist.SnapshotOptions())
}

// ListInstitutions reads the institution dropdowns at url.
func (s *Scraper) ListInstitutions(ctx context.Context, url string) *assist.InstitutionLists {
	lists, err := s.Institutions.ListInstitutions(ctx, url)
	if err != nil {
		return &assist.InstitutionLists{Error: fmt.Sprintf("Failed to get institutions from %s: %v", url, err)}
	}
	return lists
}
