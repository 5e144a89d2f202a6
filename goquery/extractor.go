// Package goquery implements name extraction from listing pages using goquery.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/namelist"
	"golang.org/x/net/html"
)

// ListingSelector matches the container of a single name entry.
const ListingSelector = "div.browsename"

// Ensure Extractor implements namelist.Extractor at compile time.
var _ namelist.Extractor = (*Extractor)(nil)

// Extractor pulls names out of behindthename.com listing pages.
//
// Each listing entry carries the name in its first child node and the usage
// in its second; whatever follows is the description. Text is returned
// exactly as rendered, tags stripped, without trimming.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the names on the page in document order.
// An entry with fewer than two child nodes yields an EINVALID error and
// ends the sequence.
func (e *Extractor) Extract(markup string) iter.Seq2[namelist.Name, error] {
	return func(yield func(namelist.Name, error) bool) {
		root, err := html.Parse(strings.NewReader(markup))
		if err != nil {
			yield(namelist.Name{}, namelist.Errorf(namelist.EINVALID, "failed to parse HTML: %v", err))
			return
		}

		entries := goquery.NewDocumentFromNode(root).Find(ListingSelector)
		for i := range entries.Length() {
			name, err := parseEntry(entries.Eq(i))
			if err != nil {
				yield(namelist.Name{}, namelist.Errorf(namelist.EINVALID, "listing entry %d: %s", i, namelist.ErrorMessage(err)))
				return
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}

// parseEntry maps one listing entry to a Name.
func parseEntry(entry *goquery.Selection) (namelist.Name, error) {
	contents := entry.Contents()
	if n := contents.Length(); n < 2 {
		return namelist.Name{}, namelist.Errorf(namelist.EINVALID, "has %d child nodes, want at least 2", n)
	}

	return namelist.Name{
		Text:        contents.Eq(0).Text(),
		Usage:       contents.Eq(1).Text(),
		Description: contents.Slice(2, goquery.ToEnd).Text(),
	}, nil
}
