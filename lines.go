package textcompare

import "strings"

// SplitLines splits s on the newline character. A string ending in a
// newline yields one extra trailing empty element representing the
// (nonexistent) line after the final newline: "a\n" splits to ["a", ""]
// while "a" splits to ["a"]. This is what makes a trailing-newline
// difference show up in a report as an added empty line.
func SplitLines(s string) []string {
	return strings.Split(s, "\n")
}
