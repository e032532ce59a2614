package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/textcompare"
)

// renderReport applies theme styles to a report. Frame lines, change
// record headers, change markers and echoed text each get their own
// style. If renderer is nil, the default lipgloss renderer is used.
func renderReport(report string, theme textcompare.Theme, renderer *lipgloss.Renderer) string {
	if report == "" {
		return ""
	}

	styles := theme.Styles()
	frameStyle := styleFromColorPair(styles.Frame, renderer)
	headerStyle := styleFromColorPair(styles.Header, renderer)
	deletedStyle := styleFromColorPair(styles.Deleted, renderer)
	addedStyle := styleFromColorPair(styles.Added, renderer)
	contextStyle := styleFromColorPair(styles.Context, renderer)

	var sb strings.Builder
	for i, line := range strings.Split(report, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch {
		case strings.HasPrefix(line, "│ •"):
			sb.WriteString(headerStyle.Render(line))
		case strings.HasPrefix(line, "┌─") || strings.HasPrefix(line, "└─"):
			sb.WriteString(frameStyle.Render(line))
		case strings.HasPrefix(line, "| "):
			sb.WriteString(renderContentLine(line, deletedStyle, addedStyle, contextStyle))
		default:
			sb.WriteString(contextStyle.Render(line))
		}
	}
	return sb.String()
}

// renderContentLine highlights [-x-] and [+y+] markers within a change
// content line, leaving the surrounding text in the context style.
func renderContentLine(line string, deleted, added, context lipgloss.Style) string {
	var sb strings.Builder
	rest := line
	for rest != "" {
		start, end, isDelete, ok := nextMarker(rest)
		if !ok {
			sb.WriteString(context.Render(rest))
			break
		}
		if start > 0 {
			sb.WriteString(context.Render(rest[:start]))
		}
		if isDelete {
			sb.WriteString(deleted.Render(rest[start:end]))
		} else {
			sb.WriteString(added.Render(rest[start:end]))
		}
		rest = rest[end:]
	}
	return sb.String()
}

// nextMarker locates the earliest complete [-x-] or [+y+] marker in s,
// returning its byte bounds and whether it is a deletion marker.
func nextMarker(s string) (start, end int, isDelete, ok bool) {
	di := markerBounds(s, "[-", "-]")
	ai := markerBounds(s, "[+", "+]")

	switch {
	case di < 0 && ai < 0:
		return 0, 0, false, false
	case ai < 0 || (di >= 0 && di < ai):
		rel := strings.Index(s[di+2:], "-]")
		return di, di + 2 + rel + 2, true, true
	default:
		rel := strings.Index(s[ai+2:], "+]")
		return ai, ai + 2 + rel + 2, false, true
	}
}

// markerBounds returns the index of the first complete marker with the
// given opening and closing delimiters, or -1 when none exists.
func markerBounds(s, opening, closing string) int {
	idx := strings.Index(s, opening)
	if idx < 0 {
		return -1
	}
	if !strings.Contains(s[idx+2:], closing) {
		return -1
	}
	return idx
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp textcompare.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
