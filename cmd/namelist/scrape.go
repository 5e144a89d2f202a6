package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fwojciec/namelist"
	"github.com/fwojciec/namelist/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Walker *crawl.Walker
	Writer namelist.NameWriter
}

// ScrapeCmd walks the listing site and writes every name as CSV.
type ScrapeCmd struct{}

// Run executes the scrape command. Names written before a failure stay on
// the output; the failure itself is returned for the caller to report.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	deps.Walker.Progress = func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			deps.Logger.Info("connecting", "url", event.URL)
		case crawl.ProgressPage:
			deps.Logger.Info("scraping page", "page", event.Page)
		case crawl.ProgressPageDone:
			deps.Logger.Info("scraped page", "page", event.Page, "names", event.Names)
			// Stream each completed page; write errors resurface on the next row.
			_ = deps.Writer.Flush()
		}
	}

	if err := deps.Writer.WriteHeader(); err != nil {
		return err
	}

	for name, err := range deps.Walker.Walk(deps.Ctx) {
		if err != nil {
			if ferr := deps.Writer.Flush(); ferr != nil {
				return errors.Join(err, ferr)
			}
			return err
		}
		if err := deps.Writer.WriteName(name); err != nil {
			return err
		}
	}

	return deps.Writer.Flush()
}
