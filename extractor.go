package assist

// Sentinel values used when a page or element lacks an attribute.
const (
	NoTitle = "No title found"
	NoID    = "no-id"
	NoName  = "no-name"
)

// RawTextLimit is the maximum number of characters kept in RawText.
const RawTextLimit = 500

// Link is an anchor with both text and a target.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Field describes one form input element.
type Field struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`

	// AriaLabel is nil unless the extraction requested aria labels.
	// It points to an empty string when the element has no aria-label.
	AriaLabel *string `json:"aria_label,omitempty"`
}

// ExtractionResult holds the structured data extracted from one page.
//
// Sequences keep document order. On success every sequence is non-nil, so it
// encodes as a JSON array even when empty. When the page could not be
// obtained only Error is set and it is the only key encoded.
type ExtractionResult struct {
	URL        string   `json:"url,omitempty"`
	Title      string   `json:"title,omitempty"`
	Headings   []string `json:"headings,omitzero"`
	Links      []Link   `json:"links,omitzero"`
	Paragraphs []string `json:"paragraphs,omitzero"`
	FormLabels []string `json:"form_labels,omitzero"`
	FormFields []Field  `json:"form_fields,omitzero"`

	// RawText is the first RawTextLimit characters of the visible text.
	RawText string `json:"raw_text,omitempty"`

	Error string `json:"error,omitempty"`
}

// NewExtractionResult returns an empty successful result.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		Headings:   []string{},
		Links:      []Link{},
		Paragraphs: []string{},
		FormLabels: []string{},
		FormFields: []Field{},
	}
}

// Limits caps the number of entries emitted per category.
// A zero value means unlimited. Only emitted entries count toward a limit.
type Limits struct {
	Headings   int
	Links      int
	Paragraphs int
	Labels     int
	Fields     int
}

// ExtractOptions configures an extraction.
type ExtractOptions struct {
	Limits           Limits
	IncludeAriaLabel bool
	IncludeRawText   bool
}

// LiveOptions returns the options used for pages fetched over HTTP:
// capped categories, no aria labels and no raw text.
func LiveOptions() ExtractOptions {
	return ExtractOptions{
		Limits: Limits{
			Headings:   10,
			Links:      20,
			Paragraphs: 10,
			Labels:     20,
			Fields:     20,
		},
	}
}

// SnapshotOptions returns the options used for rendered page snapshots:
// no caps, with aria labels and raw text.
func SnapshotOptions() ExtractOptions {
	return ExtractOptions{
		IncludeAriaLabel: true,
		IncludeRawText:   true,
	}
}

// Extractor pulls structured fields out of HTML.
type Extractor interface {
	// Extract parses html and returns the extracted fields.
	// Malformed markup never fails; it yields empty sequences instead.
	Extract(html string, opts ExtractOptions) *ExtractionResult
}
