package mock

import (
	"context"

	"github.com/fwojciec/assist"
)

var _ assist.InstitutionLister = (*InstitutionLister)(nil)

// InstitutionLister is a mock implementation of assist.InstitutionLister.
type InstitutionLister struct {
	ListInstitutionsFn func(ctx context.Context, url string) (*assist.InstitutionLists, error)
}

func (l *InstitutionLister) ListInstitutions(ctx context.Context, url string) (*assist.InstitutionLists, error) {
	return l.ListInstitutionsFn(ctx, url)
}
