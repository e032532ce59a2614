package mock

import (
	"context"

	"github.com/fwojciec/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of textcompare.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, report string) error
}

func (v *Viewer) View(ctx context.Context, report string) error {
	return v.ViewFn(ctx, report)
}
