// Package strings holds small text helpers for terminal output.
package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the width tool descriptions are cut to in tables.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the smallest limit Truncate accepts: one rune plus "...".
const MinTruncateLen = 4

// ellipsis marks truncated text.
const ellipsis = "..."

// SingleLine collapses every run of whitespace, newlines included, into a
// single space and trims the ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most maxLen runes, ending in "..." when cut.
// Limits below MinTruncateLen are raised to it.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

// TruncateDescription prepares a server supplied description for a table
// cell: one line, at most maxLen runes.
func TruncateDescription(s string, maxLen int) string {
	return Truncate(SingleLine(s), maxLen)
}
