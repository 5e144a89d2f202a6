package mock

import (
	"iter"

	"github.com/fwojciec/namelist"
)

var _ namelist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of namelist.Extractor.
type Extractor struct {
	ExtractFn func(html string) iter.Seq2[namelist.Name, error]
}

func (e *Extractor) Extract(html string) iter.Seq2[namelist.Name, error] {
	return e.ExtractFn(html)
}
