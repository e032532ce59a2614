package textdiff

import (
	"strings"

	"github.com/fwojciec/textcompare"
)

// splitChars splits s into one-element strings, one per Unicode code point.
func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

// renderCharDiff renders the inline character-level diff of a modified
// line pair. Unchanged runs appear verbatim. Within a changed run the
// characters interleave by position, each deleted character wrapped as
// [-x-] and each added character as [+y+]; the longer side's surplus
// characters follow with the same markers. Spaces are wrapped like any
// other character so whitespace-only edits stay visible.
func (d *Differ) renderCharDiff(original, revised string) string {
	deltas := d.aligner.Align(splitChars(original), splitChars(revised), true)

	var sb strings.Builder
	for _, delta := range deltas {
		if delta.Type == textcompare.DeltaEqual {
			for _, c := range delta.Source.Elements {
				sb.WriteString(c)
			}
			continue
		}

		src, tgt := delta.Source.Elements, delta.Target.Elements
		for i := 0; i < max(len(src), len(tgt)); i++ {
			if i < len(src) {
				sb.WriteString("[-")
				sb.WriteString(src[i])
				sb.WriteString("-]")
			}
			if i < len(tgt) {
				sb.WriteString("[+")
				sb.WriteString(tgt[i])
				sb.WriteString("+]")
			}
		}
	}

	return sb.String()
}
