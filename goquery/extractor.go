// Package goquery implements assist.Extractor on top of goquery's lenient
// HTML parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/assist"
)

// CSS selectors for each extracted category.
const (
	headingSelector = "h1, h2, h3"
	linkSelector    = "a"
	paraSelector    = "p"
	labelSelector   = "label"
	fieldSelector   = "input, select, textarea"
)

// Ensure Extractor implements assist.Extractor at compile time.
var _ assist.Extractor = (*Extractor)(nil)

// Extractor extracts headings, links, paragraphs, labels and form fields
// from HTML in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the extracted fields. Markup that cannot
// be parsed yields an empty result rather than an error.
func (e *Extractor) Extract(html string, opts assist.ExtractOptions) *assist.ExtractionResult {
	result := assist.NewExtractionResult()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	result.Title = title(doc)

	limits := opts.Limits
	collect(doc.Find(headingSelector), limits.Headings, func(sel *goquery.Selection) bool {
		return appendText(&result.Headings, sel)
	})
	collect(doc.Find(linkSelector), limits.Links, func(sel *goquery.Selection) bool {
		href := sel.AttrOr("href", "")
		text := strings.TrimSpace(sel.Text())
		if href == "" || text == "" {
			return false
		}
		result.Links = append(result.Links, assist.Link{Text: text, URL: href})
		return true
	})
	collect(doc.Find(paraSelector), limits.Paragraphs, func(sel *goquery.Selection) bool {
		return appendText(&result.Paragraphs, sel)
	})
	collect(doc.Find(labelSelector), limits.Labels, func(sel *goquery.Selection) bool {
		return appendText(&result.FormLabels, sel)
	})
	collect(doc.Find(fieldSelector), limits.Fields, func(sel *goquery.Selection) bool {
		result.FormFields = append(result.FormFields, field(sel, opts.IncludeAriaLabel))
		return true
	})

	if opts.IncludeRawText {
		result.RawText = truncate(visibleText(doc), assist.RawTextLimit)
	}

	return result
}

// collect calls emit for each element of sel in document order and stops
// once limit elements have been emitted. A limit of zero or less means no limit.
// emit reports whether the element produced an entry.
func collect(sel *goquery.Selection, limit int, emit func(*goquery.Selection) bool) {
	emitted := 0
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if emit(s) {
			emitted++
		}
		return limit <= 0 || emitted < limit
	})
}

// appendText appends the trimmed text of sel to dst unless it is empty.
func appendText(dst *[]string, sel *goquery.Selection) bool {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return false
	}
	*dst = append(*dst, text)
	return true
}

// field describes a form element. The type falls back to the tag name when
// the element has no type attribute.
func field(sel *goquery.Selection, withAriaLabel bool) assist.Field {
	typ, ok := sel.Attr("type")
	if !ok {
		typ = goquery.NodeName(sel)
	}

	f := assist.Field{
		Type: typ,
		ID:   sel.AttrOr("id", assist.NoID),
		Name: sel.AttrOr("name", assist.NoName),
	}
	if withAriaLabel {
		label := sel.AttrOr("aria-label", "")
		f.AriaLabel = &label
	}
	return f
}

func title(doc *goquery.Document) string {
	t := strings.TrimSpace(doc.Find("title").First().Text())
	if t == "" {
		return assist.NoTitle
	}
	return t
}
