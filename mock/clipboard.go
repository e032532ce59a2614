package mock

import "github.com/fwojciec/textcompare"

// Compile-time interface verification.
var _ textcompare.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of textcompare.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
