// Package align computes minimal edit scripts between element sequences.
package align

import "github.com/fwojciec/textcompare"

// Compile-time interface verification.
var _ textcompare.Aligner = (*Aligner)(nil)

// Aligner computes minimal edit scripts using longest-common-subsequence
// dynamic programming. The script minimizes total inserted plus deleted
// elements; adjacent delete and insert runs covering the same region are
// merged into a single Change delta.
type Aligner struct{}

// New creates a new Aligner.
func New() *Aligner {
	return &Aligner{}
}

// Align computes the edit script from source to target. Deltas come back
// in ascending source order and cover both sequences exactly; equal runs
// are included only when includeEqual is set.
func (a *Aligner) Align(source, target []string, includeEqual bool) []textcompare.Delta {
	matches := lcsMatches(source, target)
	return buildDeltas(source, target, matches, includeEqual)
}

// pairing maps an element index in the source to its counterpart in the target.
type pairing struct {
	src, tgt int
}

// lcsMatches returns the index pairs of a longest common subsequence of
// the two sequences, in ascending order. Uses an O(n*m) dynamic
// programming table stored as a flat slice (single allocation), with
// backtracking from the end to recover the matched positions.
func lcsMatches(source, target []string) []pairing {
	m, n := len(source), len(target)
	if m == 0 || n == 0 {
		return nil
	}

	// table[i*stride+j] holds the LCS length of source[:i] and target[:j].
	stride := n + 1
	table := make([]int, (m+1)*stride)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if source[i-1] == target[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	lcsLen := table[m*stride+n]
	if lcsLen == 0 {
		return nil
	}

	matches := make([]pairing, 0, lcsLen)
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case source[i-1] == target[j-1]:
			matches = append(matches, pairing{i - 1, j - 1})
			i--
			j--
		case table[(i-1)*stride+j] > table[i*stride+j-1]:
			i--
		default:
			j--
		}
	}

	// Backtracking yields matches last-to-first.
	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}

	return matches
}

// buildDeltas walks the match list and converts the gaps between matched
// positions into Insert, Delete and Change deltas. Consecutive matches
// coalesce into single Equal deltas.
func buildDeltas(source, target []string, matches []pairing, includeEqual bool) []textcompare.Delta {
	var deltas []textcompare.Delta
	s, t := 0, 0

	emitGap := func(srcEnd, tgtEnd int) {
		if s == srcEnd && t == tgtEnd {
			return
		}
		d := textcompare.Delta{
			Source: textcompare.Chunk{Position: s, Elements: source[s:srcEnd]},
			Target: textcompare.Chunk{Position: t, Elements: target[t:tgtEnd]},
		}
		switch {
		case s == srcEnd:
			d.Type = textcompare.DeltaInsert
		case t == tgtEnd:
			d.Type = textcompare.DeltaDelete
		default:
			d.Type = textcompare.DeltaChange
		}
		deltas = append(deltas, d)
		s, t = srcEnd, tgtEnd
	}

	for k := 0; k < len(matches); {
		emitGap(matches[k].src, matches[k].tgt)

		// Extend the equal run across consecutive matches.
		end := k + 1
		for end < len(matches) && matches[end].src == matches[end-1].src+1 && matches[end].tgt == matches[end-1].tgt+1 {
			end++
		}
		last := matches[end-1]

		if includeEqual {
			deltas = append(deltas, textcompare.Delta{
				Type:   textcompare.DeltaEqual,
				Source: textcompare.Chunk{Position: s, Elements: source[s : last.src+1]},
				Target: textcompare.Chunk{Position: t, Elements: target[t : last.tgt+1]},
			})
		}
		s, t = last.src+1, last.tgt+1
		k = end
	}

	emitGap(len(source), len(target))

	return deltas
}
