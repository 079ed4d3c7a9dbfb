package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/assist"
)

// Run executes the institutions command.
func (c *InstitutionsCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, deps.Scraper.ListInstitutions(deps.Ctx, c.URL))
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, deps.Scraper.Scrape(deps.Ctx, c.URL))
}

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, deps.Scraper.ScrapeRendered(deps.Ctx, c.URL))
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps.Stdin)
	if err != nil {
		return writeJSON(deps.Stdout, &assist.ExtractionResult{
			Error: fmt.Sprintf("Failed to read %s: %v", c.Path, err),
		})
	}
	return writeJSON(deps.Stdout, deps.Scraper.ExtractSnapshot(html))
}

func (c *ExtractCmd) read(stdin io.Reader) (string, error) {
	if c.Path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(c.Path)
	return string(data), err
}

// writeJSON writes v as JSON indented by two spaces.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
