package mock

import "github.com/fwojciec/textcompare"

// Compile-time interface verification.
var _ textcompare.Aligner = (*Aligner)(nil)

// Aligner is a mock implementation of textcompare.Aligner.
type Aligner struct {
	AlignFn func(source, target []string, includeEqual bool) []textcompare.Delta
}

func (a *Aligner) Align(source, target []string, includeEqual bool) []textcompare.Delta {
	return a.AlignFn(source, target, includeEqual)
}
