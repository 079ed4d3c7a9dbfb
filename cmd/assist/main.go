package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/assist/goquery"
	assisthttp "github.com/fwojciec/assist/http"
	"github.com/fwojciec/assist/rod"
	"github.com/fwojciec/assist/scrape"
	assistslog "github.com/fwojciec/assist/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by "extract -". Set before calling Run().
	Stdin io.Reader

	// Scraper replaces the wired scraper when set. Used by end-to-end tests.
	Scraper *scrape.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
// Failures to reach the site are printed as JSON and are not errors;
// only invalid usage returns an error.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("assist"),
		kong.Description("Extract structured data from assist.org"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		// Help was printed for a subcommand; nothing should run.
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: m.Scraper,
	}

	if deps.Scraper == nil {
		s := newScraper(cli, logger)
		defer s.Fetcher.Close()
		defer s.Renderer.Close()
		deps.Scraper = s
	}

	return kongCtx.Run(deps)
}

// newScraper wires the HTTP and browser implementations behind logging decorators.
// No browser is started until a command needs one.
func newScraper(cli *CLI, logger *slog.Logger) *scrape.Scraper {
	var rodOpts []rod.Option
	if cli.Browser != "" {
		rodOpts = append(rodOpts, rod.WithBrowserBin(cli.Browser))
	}

	return &scrape.Scraper{
		Fetcher:      assistslog.NewLoggingFetcher(assisthttp.NewFetcher(assisthttp.WithTimeout(cli.Timeout)), "static", logger),
		Renderer:     assistslog.NewLoggingFetcher(rod.NewFetcher(rodOpts...), "rendered", logger),
		Extractor:    assistslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Institutions: assistslog.NewLoggingInstitutionLister(rod.NewInstitutionLister(rodOpts...), logger),
	}
}

// newLogger logs to stderr in verbose mode and discards everything otherwise.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
