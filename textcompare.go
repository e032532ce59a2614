// Package textcompare provides domain types for computing and rendering
// text comparison reports.
//
// A report describes the differences between two texts at line
// granularity, with character-level detail for lines that changed only
// slightly. It is designed to be embedded in test-failure output, so
// the format is fixed and the same inputs always produce byte-identical
// results.
package textcompare

import "context"

// DeltaType identifies the kind of difference a Delta describes.
type DeltaType int

// Delta types.
const (
	DeltaEqual DeltaType = iota
	DeltaInsert
	DeltaDelete
	DeltaChange
)

// Chunk is a contiguous run of elements within one sequence, identified
// by the zero-based index of its first element.
type Chunk struct {
	Position int
	Elements []string // Lines of text, or single characters for the character pass
}

// End returns the index one past the last element in the chunk.
func (c Chunk) End() int { return c.Position + len(c.Elements) }

// Delta is a single unit of difference between two aligned sequences.
// Insert deltas have an empty source chunk whose position marks the
// insertion point; delete deltas have an empty target chunk.
type Delta struct {
	Type   DeltaType
	Source Chunk
	Target Chunk
}

// Aligner computes the minimal edit script between two sequences.
type Aligner interface {
	// Align returns deltas in ascending source order. Concatenating the
	// source chunks of all deltas (including equal runs) reconstructs
	// source exactly once; same for target chunks. When includeEqual is
	// false, equal runs are omitted from the result.
	Align(source, target []string, includeEqual bool) []Delta
}

// ChangeKind identifies the kind of a change record.
type ChangeKind int

// Change record kinds.
const (
	// ChangeModified is a single line replaced by a single similar line,
	// rendered as an inline character diff.
	ChangeModified ChangeKind = iota
	// ChangeRemoved is one or more consecutive original lines with no
	// surviving counterpart.
	ChangeRemoved
	// ChangeAdded is one or more consecutive revised lines with no
	// original counterpart.
	ChangeAdded
)

// Change is one reported difference, positioned in the original text's
// 1-based line numbering. For Added records Line is the number of the
// last surviving original line before the insertion point; 0 means the
// lines were added before the first line.
type Change struct {
	Kind  ChangeKind
	Line  int
	Diff  string   // Modified only: the rendered inline character diff
	Lines []string // Removed/Added only: the affected lines
}

// Position returns the record's sort position in the report. Added
// records anchor to the line they follow, so they sort just after any
// change to that line; in particular the Removed half of a whole-line
// replacement sorts together with its paired Added half.
func (c Change) Position() int {
	if c.Kind == ChangeAdded {
		return c.Line + 1
	}
	return c.Line
}

// Comparer produces a comparison report for two texts.
type Comparer interface {
	// Compare returns the empty string when original and revised are
	// identical, otherwise the full report.
	Compare(original, revised string) string
}

// Viewer displays a comparison report to the user.
type Viewer interface {
	// View displays the report and blocks until the user exits.
	View(ctx context.Context, report string) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	// Copy writes content to the system clipboard.
	Copy(content string) error
}
