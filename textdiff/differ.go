// Package textdiff implements the two-level text comparison pipeline: a
// line-granularity diff pass, per-pair classification, and a selective
// character-granularity pass, rendered as a fixed-format report.
package textdiff

import (
	"sort"

	"github.com/fwojciec/textcompare"
	"github.com/fwojciec/textcompare/align"
)

// Compile-time interface verification.
var _ textcompare.Comparer = (*Differ)(nil)

// Differ compares two texts and renders a comparison report.
type Differ struct {
	aligner textcompare.Aligner
}

// New creates a Differ backed by the LCS alignment engine.
func New() *Differ {
	return &Differ{aligner: align.New()}
}

// Compare returns the empty string when original and revised are
// identical, otherwise the full comparison report. The same inputs
// always produce byte-identical output.
func (d *Differ) Compare(original, revised string) string {
	if original == revised {
		return ""
	}

	deltas := d.aligner.Align(
		textcompare.SplitLines(original),
		textcompare.SplitLines(revised),
		false,
	)

	var changes []textcompare.Change
	for _, delta := range deltas {
		changes = append(changes, d.classify(delta)...)
	}

	// Stability matters: the Removed half of a whole-line replacement
	// must stay immediately before its paired Added half.
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Position() < changes[j].Position()
	})

	return textcompare.FormatReport(original, revised, changes)
}

// Compare is a convenience wrapper around New().Compare.
func Compare(original, revised string) string {
	return New().Compare(original, revised)
}
