package rod

import "time"

// DefaultNavigationTimeout bounds each navigation or reload, including the
// wait for network idle.
const DefaultNavigationTimeout = 30 * time.Second

// DefaultElementTimeout bounds the wait for a dropdown element to appear
// after the page has settled.
const DefaultElementTimeout = 30 * time.Second

// Timings holds the fixed settle delays used while driving the page.
// Delays give client-side rendering time to finish; there is no readiness
// signal to wait for instead.
type Timings struct {
	// Settle follows every navigation and reload.
	Settle time.Duration

	// FromOpen follows the click that opens the first dropdown.
	FromOpen time.Duration

	// Dismiss follows the Escape key press that closes the first dropdown.
	Dismiss time.Duration

	// TransferOpen follows the click that opens the second dropdown.
	TransferOpen time.Duration
}

// DefaultTimings returns the delays used against the live site.
func DefaultTimings() Timings {
	return Timings{
		Settle:       2 * time.Second,
		FromOpen:     1500 * time.Millisecond,
		Dismiss:      1 * time.Second,
		TransferOpen: 2 * time.Second,
	}
}

type config struct {
	navigationTimeout time.Duration
	elementTimeout    time.Duration
	timings           Timings
	bin               string
}

func newConfig(opts []Option) config {
	cfg := config{
		navigationTimeout: DefaultNavigationTimeout,
		elementTimeout:    DefaultElementTimeout,
		timings:           DefaultTimings(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Fetcher or an InstitutionLister.
type Option func(*config)

// WithNavigationTimeout sets the timeout for each navigation or reload.
// Defaults to DefaultNavigationTimeout (30s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(c *config) {
		c.navigationTimeout = d
	}
}

// WithElementTimeout sets how long to wait for a dropdown element before
// reporting it as not found.
// Defaults to DefaultElementTimeout (30s) if not specified.
func WithElementTimeout(d time.Duration) Option {
	return func(c *config) {
		c.elementTimeout = d
	}
}

// WithTimings overrides the settle delays.
func WithTimings(t Timings) Option {
	return func(c *config) {
		c.timings = t
	}
}

// WithBrowserBin sets the Chrome or Chromium binary to launch.
// By default rod finds a local browser or downloads one.
func WithBrowserBin(path string) Option {
	return func(c *config) {
		c.bin = path
	}
}
