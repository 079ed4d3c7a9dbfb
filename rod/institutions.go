package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/assist"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// Selectors for the institution dropdowns and their option rows.
const (
	FromSelector     = "#None-governing-institution-select"
	TransferSelector = "#institution"
	OptionSelector   = `ul[role="listbox"] li, .ng-option, [role="option"]`
)

// Dropdown names reported in assist.DropdownResult.
const (
	FromDropdown     = "from_institution"
	TransferDropdown = "transfer_institution"
)

// Ensure InstitutionLister implements assist.InstitutionLister at compile time.
var _ assist.InstitutionLister = (*InstitutionLister)(nil)

// InstitutionLister opens the site's institution dropdowns in a headless
// browser and reads their options.
type InstitutionLister struct {
	cfg config
}

// NewInstitutionLister creates a new InstitutionLister.
func NewInstitutionLister(opts ...Option) *InstitutionLister {
	return &InstitutionLister{cfg: newConfig(opts)}
}

// ListInstitutions loads url, reads the "from" dropdown, reloads the page and
// reads the "transfer" dropdown. The two attempts are independent: a failure
// in one leaves its list empty and does not stop the other.
func (l *InstitutionLister) ListInstitutions(ctx context.Context, url string) (*assist.InstitutionLists, error) {
	s, err := launch(ctx, l.cfg.bin)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	page, err := s.newPage(ctx)
	if err != nil {
		return nil, err
	}

	t := l.cfg.timings

	err = waitNavigation(page, l.cfg.navigationTimeout, func(p *rod.Page) error {
		return p.Navigate(url)
	})
	if err != nil {
		return nil, err
	}
	if err := settle(ctx, t.Settle); err != nil {
		return nil, err
	}

	from := l.readDropdown(ctx, page, FromDropdown, FromSelector, t.FromOpen)

	var transfer assist.DropdownResult
	if err := l.reset(ctx, page); err != nil {
		transfer = assist.DropdownResult{
			Name:     TransferDropdown,
			Selector: TransferSelector,
			Status:   assist.DropdownFailed,
			Options:  []string{},
			Err:      err,
		}
	} else {
		transfer = l.readDropdown(ctx, page, TransferDropdown, TransferSelector, t.TransferOpen)
	}

	return &assist.InstitutionLists{
		FromInstitution:     from.Options,
		TransferInstitution: transfer.Options,
		Attempts:            []assist.DropdownResult{from, transfer},
	}, nil
}

// reset dismisses any open dropdown and reloads the page.
func (l *InstitutionLister) reset(ctx context.Context, page *rod.Page) error {
	if err := page.Keyboard.Press(input.Escape); err != nil {
		return err
	}
	if err := settle(ctx, l.cfg.timings.Dismiss); err != nil {
		return err
	}

	err := waitNavigation(page, l.cfg.navigationTimeout, func(p *rod.Page) error {
		return p.Reload()
	})
	if err != nil {
		return err
	}
	return settle(ctx, l.cfg.timings.Settle)
}

// readDropdown waits up to the element timeout for selector, clicks it, waits
// for the options to render and collects their text. An element that never
// appears is reported as DropdownNotFound rather than an error.
func (l *InstitutionLister) readDropdown(ctx context.Context, page *rod.Page, name, selector string, wait time.Duration) assist.DropdownResult {
	result := assist.DropdownResult{
		Name:     name,
		Selector: selector,
		Options:  []string{},
	}

	fail := func(err error) assist.DropdownResult {
		result.Status = assist.DropdownFailed
		result.Err = err
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	el, err := waitElement(ctx, page, selector, l.cfg.elementTimeout)
	if errors.Is(err, errElementMissing) {
		result.Status = assist.DropdownNotFound
		return result
	}
	if err != nil {
		return fail(err)
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fail(err)
	}
	if err := settle(ctx, wait); err != nil {
		return fail(err)
	}

	rows, err := page.Elements(OptionSelector)
	if err != nil {
		return fail(err)
	}

	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		text, err := row.Text()
		if err != nil {
			result.Options = assist.CollectOptions(texts)
			return fail(err)
		}
		texts = append(texts, text)
	}

	result.Status = assist.DropdownFound
	result.Options = assist.CollectOptions(texts)
	return result
}

var errElementMissing = errors.New("element not found")

// waitElement polls for selector until it appears or timeout elapses. The
// returned element is bound to ctx rather than to the timeout.
func waitElement(ctx context.Context, page *rod.Page, selector string, timeout time.Duration) (*rod.Element, error) {
	p := page.Context(ctx).Timeout(timeout)
	defer p.CancelTimeout()

	el, err := p.Element(selector)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var notFound *rod.ElementNotFoundError
		if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &notFound) {
			return nil, errElementMissing
		}
		return nil, err
	}
	return el.Context(ctx), nil
}
