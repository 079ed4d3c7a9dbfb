package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/assist/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log each fetch and extraction to stderr"`
	Timeout time.Duration `short:"t" default:"10s" env:"ASSIST_TIMEOUT" help:"HTTP fetch timeout"`
	Browser string        `env:"ASSIST_BROWSER" help:"Path to the Chrome or Chromium binary"`

	Institutions InstitutionsCmd `cmd:"" default:"withargs" help:"List institutions from the site's dropdowns (default)"`
	Scrape       ScrapeCmd       `cmd:"" help:"Fetch a page over HTTP and extract its fields"`
	Render       RenderCmd       `cmd:"" help:"Render a page in a headless browser and extract its fields"`
	Extract      ExtractCmd      `cmd:"" help:"Extract fields from a saved HTML page"`
}

// InstitutionsCmd is the "institutions" subcommand.
type InstitutionsCmd struct {
	URL string `arg:"" optional:"" default:"https://www.assist.org" help:"Page with the institution dropdowns"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" optional:"" default:"https://www.assist.org" help:"Page to fetch"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	URL string `arg:"" optional:"" default:"https://www.assist.org" help:"Page to render"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"HTML file to read, or - for stdin"`
}
