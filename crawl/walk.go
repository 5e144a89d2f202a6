// Package crawl walks a paginated name listing site page by page.
package crawl

import (
	"context"
	"fmt"
	"iter"
	"strconv"

	"github.com/fwojciec/namelist"
)

// Walker fetches consecutive listing pages and extracts their names.
// It stops at the first page that contains no names.
type Walker struct {
	BaseURL   string
	Fetcher   namelist.Fetcher
	Extractor namelist.Extractor

	// Progress, if set, receives an event around every page.
	Progress ProgressFunc
}

// ProgressEvent reports progress during a walk.
type ProgressEvent struct {
	Type  ProgressType
	Page  int
	URL   string
	Names int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPage
	ProgressPageDone
)

// ProgressFunc is a callback for reporting walk progress.
type ProgressFunc func(event ProgressEvent)

// PageURL returns the address of the listing page at the zero-based index.
// The first page has no number; later pages are numbered from 2.
func PageURL(baseURL string, index int) string {
	u := baseURL + "names"
	if index > 0 {
		u += "/" + strconv.Itoa(index+1)
	}
	return u
}

// Walk returns every name on the site in page order.
//
// Pages are fetched one at a time, only once the consumer has taken every
// name from the previous page. A fetch or extraction failure is yielded as
// the final element. Breaking out of the loop stops the walk without any
// further fetches.
func (w *Walker) Walk(ctx context.Context) iter.Seq2[namelist.Name, error] {
	return func(yield func(namelist.Name, error) bool) {
		w.report(ProgressEvent{Type: ProgressStarted, URL: w.BaseURL})

		for page := 0; ; page++ {
			url := PageURL(w.BaseURL, page)
			w.report(ProgressEvent{Type: ProgressPage, Page: page, URL: url})

			html, err := w.Fetcher.Fetch(ctx, url)
			if err != nil {
				yield(namelist.Name{}, fmt.Errorf("fetch page %d (%s): %w", page, url, err))
				return
			}

			count := 0
			for name, err := range w.Extractor.Extract(html) {
				if err != nil {
					yield(namelist.Name{}, fmt.Errorf("extract page %d (%s): %w", page, url, err))
					return
				}
				count++
				if !yield(name, nil) {
					return
				}
			}

			w.report(ProgressEvent{Type: ProgressPageDone, Page: page, URL: url, Names: count})
			if count == 0 {
				return
			}
		}
	}
}

// Names collects every name from the walk into a slice.
// Names gathered before a failure are returned along with the error.
func (w *Walker) Names(ctx context.Context) ([]namelist.Name, error) {
	var names []namelist.Name
	for name, err := range w.Walk(ctx) {
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (w *Walker) report(event ProgressEvent) {
	if w.Progress != nil {
		w.Progress(event)
	}
}
