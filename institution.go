package assist

import (
	"context"
	"strings"
)

// DropdownStatus is the outcome of one dropdown interaction.
type DropdownStatus string

// DropdownStatus values.
const (
	DropdownFound    DropdownStatus = "found"
	DropdownNotFound DropdownStatus = "not_found"
	DropdownFailed   DropdownStatus = "failed"
)

// DropdownResult records one attempt to open a dropdown and read its options.
type DropdownResult struct {
	Name     string
	Selector string
	Status   DropdownStatus
	Options  []string

	// Err is set when Status is DropdownFailed.
	Err error
}

// InstitutionLists holds the institutions offered by the site's dropdowns.
// When the page could not be loaded only Error is set.
type InstitutionLists struct {
	FromInstitution     []string `json:"from_institution,omitzero"`
	TransferInstitution []string `json:"transfer_institution,omitzero"`
	Error               string   `json:"error,omitempty"`

	// Attempts records each dropdown interaction in the order performed.
	Attempts []DropdownResult `json:"-"`
}

// InstitutionLister reads institution lists from a rendered page.
type InstitutionLister interface {
	// ListInstitutions opens each institution dropdown at url and collects
	// its options. A dropdown that cannot be read leaves its list empty;
	// only failures to load the page are returned as errors.
	ListInstitutions(ctx context.Context, url string) (*InstitutionLists, error)
}

// IsPlaceholderOption reports whether a dropdown row is not an institution,
// such as an icon link or a "Don't see your school?" prompt.
func IsPlaceholderOption(text string) bool {
	return strings.HasPrefix(text, "link") || strings.Contains(text, "Don't see")
}

// CollectOptions trims option texts, drops empty and placeholder rows, and
// removes duplicates keeping the first occurrence. The result is never nil.
func CollectOptions(texts []string) []string {
	options := make([]string, 0, len(texts))
	seen := make(map[string]struct{}, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" || IsPlaceholderOption(text) {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}
	return options
}
