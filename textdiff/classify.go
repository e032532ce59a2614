package textdiff

import (
	"unicode/utf8"

	"github.com/fwojciec/textcompare"
)

// shortLineLimit is the length below which a line pair always gets an
// inline character diff: at that size the diff is cheap and informative
// regardless of how dissimilar the lines are.
const shortLineLimit = 5

// similarityThreshold is the minimum similarity score for an inline
// character diff. Pairs at or below it render as a removal plus an
// addition instead.
const similarityThreshold = 0.5

// classify expands one line-level delta into change records.
func (d *Differ) classify(delta textcompare.Delta) []textcompare.Change {
	switch delta.Type {
	case textcompare.DeltaDelete:
		return []textcompare.Change{{
			Kind:  textcompare.ChangeRemoved,
			Line:  delta.Source.Position + 1,
			Lines: delta.Source.Elements,
		}}
	case textcompare.DeltaInsert:
		// Anchored at the original line immediately preceding the
		// insertion point; 0 when inserting before the first line.
		return []textcompare.Change{{
			Kind:  textcompare.ChangeAdded,
			Line:  delta.Source.Position,
			Lines: delta.Target.Elements,
		}}
	case textcompare.DeltaChange:
		return d.classifyChange(delta)
	case textcompare.DeltaEqual:
		return nil
	default:
		return nil
	}
}

// classifyChange pairs the delta's source and target lines by index
// (missing entries on the shorter side count as empty) and decides, per
// pair, between an inline character diff and a whole-line replacement.
// Consecutive replacement pairs accumulate into one Removed and one
// Added record so a fully rewritten block reads as two entries rather
// than a removal/addition per line.
func (d *Differ) classifyChange(delta textcompare.Delta) []textcompare.Change {
	src, tgt := delta.Source.Elements, delta.Target.Elements
	count := max(len(src), len(tgt))

	var changes []textcompare.Change
	var removed, added []string
	runStart := -1

	flush := func() {
		if runStart < 0 {
			return
		}
		line := delta.Source.Position + runStart + 1
		changes = append(changes,
			textcompare.Change{Kind: textcompare.ChangeRemoved, Line: line, Lines: removed},
			textcompare.Change{Kind: textcompare.ChangeAdded, Line: line - 1, Lines: added},
		)
		removed, added = nil, nil
		runStart = -1
	}

	for i := 0; i < count; i++ {
		var srcLine, tgtLine string
		if i < len(src) {
			srcLine = src[i]
		}
		if i < len(tgt) {
			tgtLine = tgt[i]
		}

		if renderInline(srcLine, tgtLine) {
			flush()
			changes = append(changes, textcompare.Change{
				Kind: textcompare.ChangeModified,
				Line: delta.Source.Position + i + 1,
				Diff: d.renderCharDiff(srcLine, tgtLine),
			})
			continue
		}

		if runStart < 0 {
			runStart = i
		}
		removed = append(removed, srcLine)
		added = append(added, tgtLine)
	}
	flush()

	return changes
}

// renderInline reports whether a line pair should be rendered as an
// inline character diff rather than a whole-line replacement.
func renderInline(srcLine, tgtLine string) bool {
	if utf8.RuneCountInString(srcLine) < shortLineLimit || utf8.RuneCountInString(tgtLine) < shortLineLimit {
		return true
	}
	return similarity(srcLine, tgtLine) > similarityThreshold
}

// similarity estimates in [0,1] how much two lines share. The shorter
// line's characters are matched greedily, in order, against the longer
// line with a monotonically advancing search position; the score is the
// match count divided by the longer line's length. This is a single
// forward scan, not a true LCS ratio.
func similarity(a, b string) float64 {
	longer, shorter := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return 0
	}

	matched := 0
	next := 0
	for _, r := range shorter {
		for k := next; k < len(longer); k++ {
			if longer[k] == r {
				matched++
				next = k + 1
				break
			}
		}
	}

	return float64(matched) / float64(len(longer))
}
