package namelist

import "iter"

// Extractor turns one listing page into the names it contains.
type Extractor interface {
	// Extract returns the names found in html, in document order.
	// The sequence is lazy and may be ranged over more than once; each
	// pass parses html again. A malformed listing entry yields an
	// EINVALID error and ends the sequence.
	Extract(html string) iter.Seq2[Name, error]
}
