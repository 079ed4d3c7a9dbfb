package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// session is a browser launched for a single operation. Every operation
// owns its session and closes it before returning.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// launch starts a headless browser with stability flags.
func launch(ctx context.Context, bin string) (*session, error) {
	lnchr := launcher.New().
		Context(ctx).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if bin != "" {
		lnchr = lnchr.Bin(bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{browser: browser, launcher: lnchr}, nil
}

// newPage opens a blank tab bound to ctx.
func (s *session) newPage(ctx context.Context) (*rod.Page, error) {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return page.Context(ctx), nil
}

// Close shuts down the browser and kills the launched process.
func (s *session) Close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()
	return err
}

// PID returns the process ID of the launched browser.
func (s *session) PID() int {
	return s.launcher.PID()
}

// waitNavigation runs nav and waits until the network is idle. The wait is
// bounded by timeout; running out of time is an error.
func waitNavigation(page *rod.Page, timeout time.Duration, nav func(*rod.Page) error) error {
	p := page.Timeout(timeout)
	defer p.CancelTimeout()

	wait := p.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := nav(p); err != nil {
		return err
	}
	wait()

	return p.GetContext().Err()
}

// settle waits d or until ctx is done.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
