package mock

import "github.com/fwojciec/textcompare"

// Compile-time interface verification.
var _ textcompare.Comparer = (*Comparer)(nil)

// Comparer is a mock implementation of textcompare.Comparer.
type Comparer struct {
	CompareFn func(original, revised string) string
}

func (c *Comparer) Compare(original, revised string) string {
	return c.CompareFn(original, revised)
}
