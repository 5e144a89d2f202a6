package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/namelist"
	"github.com/fwojciec/namelist/crawl"
	"github.com/fwojciec/namelist/csv"
	"github.com/fwojciec/namelist/goquery"
	nlhttp "github.com/fwojciec/namelist/http"
	nlslog "github.com/fwojciec/namelist/slog"
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
	// Fetcher replaces the HTTP fetcher when set. Used for end-to-end testing.
	Fetcher namelist.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("namelist"),
		kong.Description("Scrape behindthename.com for full lists of names"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)

	// Help was printed; kong asked to exit wherever the flag appeared.
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	// Validate before any network activity
	kind, err := namelist.ParseNameKind(cli.Kind)
	if err != nil {
		return err
	}
	baseURL, err := namelist.BaseURL(kind)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = nlhttp.NewFetcher(nlhttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Walker: &crawl.Walker{
			BaseURL:   baseURL,
			Fetcher:   nlslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewExtractor(),
		},
		Writer: csv.NewWriter(stdout),
	}

	return (&ScrapeCmd{}).Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Kind    string        `arg:"" optional:"" default:"first_name" enum:"first_name,surname" help:"Kind of name to scrape: first_name or surname."`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Verbose bool          `short:"v" help:"Log every HTTP request"`
}
