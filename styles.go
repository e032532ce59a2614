package textcompare

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in a report.
type Styles struct {
	Frame   ColorPair // Style for box-drawing frame lines (┌─, └─)
	Header  ColorPair // Style for change record headers (│ • line N:)
	Deleted ColorPair // Style for deleted-character markers ([-x-])
	Added   ColorPair // Style for added-character markers ([+y+])
	Context ColorPair // Style for echoed text and unchanged characters
}

// Theme provides styles for rendering reports.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
