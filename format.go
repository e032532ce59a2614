package textcompare

import (
	"fmt"
	"strings"
)

// preamble is the fixed header of every report. It must stay stable
// character for character: consumers pattern-match on it.
const preamble = `Text comparison failed:
Format description:
• [-d-] shows deleted character
• [+a+] shows added character
• Spaces are marked explicitly in changes
• Changes are shown character by character
• Multiple line additions are presented as complete lines
• Changes are reported in line number order with related changes grouped together
`

// FormatReport renders the full comparison report: the fixed preamble,
// both texts echoed line by line, and the change list. Changes must
// already be ordered by Position. The result has no trailing newline.
func FormatReport(original, revised string, changes []Change) string {
	var sb strings.Builder

	sb.WriteString(preamble)
	sb.WriteString("\n")

	sb.WriteString("┌─ original\n")
	writeBlock(&sb, original)
	sb.WriteString("└─ differs from revised\n")

	sb.WriteString("┌─ revised\n")
	writeBlock(&sb, revised)
	sb.WriteString("└─ differences\n")

	for _, c := range changes {
		switch c.Kind {
		case ChangeModified:
			fmt.Fprintf(&sb, "│ • line %d:\n", c.Line)
			writeContent(&sb, c.Diff)
		case ChangeRemoved:
			fmt.Fprintf(&sb, "│ • removed line %d:\n", c.Line)
			for _, line := range c.Lines {
				writeContent(&sb, line)
			}
		case ChangeAdded:
			fmt.Fprintf(&sb, "│ • added after line %d:\n", c.Line)
			for _, line := range c.Lines {
				writeContent(&sb, line)
			}
		}
	}

	sb.WriteString("└─")
	return sb.String()
}

// writeBlock echoes every line of text, including empty ones. A text
// ending in a newline shows a final empty line, matching SplitLines.
func writeBlock(sb *strings.Builder, text string) {
	for _, line := range SplitLines(text) {
		sb.WriteString("│ ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func writeContent(sb *strings.Builder, line string) {
	sb.WriteString("| ")
	sb.WriteString(line)
	sb.WriteString("\n")
}
