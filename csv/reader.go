package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"

	"github.com/fwojciec/namelist"
)

// Reader parses a stream produced by Writer back into names.
//
// A quoted "\r\n" inside a field is read back as "\n". Names from
// goquery.Extractor never contain "\r" since the HTML tokenizer normalizes
// line endings, so they survive the round trip unchanged.
type Reader struct {
	r      *csv.Reader
	header bool
}

// NewReader creates a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	return &Reader{r: cr}
}

// Read returns the next name. It returns io.EOF when the stream is
// exhausted and EINVALID if the header row does not match Header.
func (r *Reader) Read() (namelist.Name, error) {
	if !r.header {
		record, err := r.r.Read()
		if err != nil {
			return namelist.Name{}, err
		}
		if !slices.Equal(record, Header) {
			return namelist.Name{}, namelist.Errorf(namelist.EINVALID, "unexpected header %q", record)
		}
		r.header = true
	}

	record, err := r.r.Read()
	if err != nil {
		return namelist.Name{}, err
	}
	return namelist.Name{Text: record[0], Description: record[1], Usage: record[2]}, nil
}

// ReadAll returns every remaining name.
func (r *Reader) ReadAll() ([]namelist.Name, error) {
	var names []namelist.Name
	for {
		name, err := r.Read()
		if errors.Is(err, io.EOF) {
			return names, nil
		} else if err != nil {
			return names, err
		}
		names = append(names, name)
	}
}
