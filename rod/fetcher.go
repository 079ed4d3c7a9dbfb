// Package rod implements assist.Fetcher and assist.InstitutionLister with
// headless Chrome driven through go-rod.
package rod

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/assist"
	"github.com/go-rod/rod"
)

// Ensure Fetcher implements assist.Fetcher at compile time.
var _ assist.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Each Fetch launches its own browser and closes it before returning.
type Fetcher struct {
	cfg    config
	closed atomic.Bool
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{cfg: newConfig(opts)}
}

// Fetch navigates to the URL, waits for the network to go idle plus the
// settle delay, and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", assist.Errorf(assist.EINVALID, "fetcher closed")
	}

	// Check context before launching a browser
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s, err := launch(ctx, f.cfg.bin)
	if err != nil {
		return "", err
	}
	defer s.Close()

	page, err := s.newPage(ctx)
	if err != nil {
		return "", err
	}

	err = waitNavigation(page, f.cfg.navigationTimeout, func(p *rod.Page) error {
		return p.Navigate(url)
	})
	if err != nil {
		return "", err
	}

	if err := settle(ctx, f.cfg.timings.Settle); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close marks the fetcher closed. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.closed.Store(true)
	return nil
}
