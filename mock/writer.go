package mock

import "github.com/fwojciec/namelist"

var _ namelist.NameWriter = (*NameWriter)(nil)

// NameWriter is a mock implementation of namelist.NameWriter.
type NameWriter struct {
	WriteHeaderFn func() error
	WriteNameFn   func(name namelist.Name) error
	FlushFn       func() error
}

func (w *NameWriter) WriteHeader() error {
	return w.WriteHeaderFn()
}

func (w *NameWriter) WriteName(name namelist.Name) error {
	return w.WriteNameFn(name)
}

func (w *NameWriter) Flush() error {
	return w.FlushFn()
}
