package namelist

// NameWriter serializes names to an output stream.
type NameWriter interface {
	// WriteHeader writes the column header. Call once before any names.
	WriteHeader() error

	// WriteName writes a single name as one row.
	WriteName(name Name) error

	// Flush writes any buffered data to the underlying stream.
	Flush() error
}
