// Package assist extracts structured data from an academic-transfer website.
// It fetches pages either over plain HTTP or through a headless browser,
// pulls headings, links, paragraphs and form fields out of the markup, and
// reads the institution lists behind the site's JavaScript dropdowns.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, http/).
package assist

// DefaultURL is the site scraped when no URL is given.
const DefaultURL = "https://www.assist.org"
