// Package csv serializes names as CSV with every field quoted.
package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/fwojciec/namelist"
)

// Header is the column order of the output.
var Header = []string{"text", "description", "usage"}

// Ensure Writer implements namelist.NameWriter at compile time.
var _ namelist.NameWriter = (*Writer)(nil)

// Writer writes names as CSV rows terminated by CRLF.
// encoding/csv only quotes fields that need it, so rows are written by hand.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.writeRow(Header)
}

// WriteName writes a single name as one row.
func (w *Writer) WriteName(name namelist.Name) error {
	return w.writeRow([]string{name.Text, name.Description, name.Usage})
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) writeRow(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	_, err := w.w.WriteString("\r\n")
	return err
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
