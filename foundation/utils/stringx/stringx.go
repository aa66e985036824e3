// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations the toyc
//              tooling needs beyond the Go standard library: blank/empty
//              checks, safe truncation, indentation, and pluralization
//              for user-facing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"
	"unicode"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or consists only of whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most max runes, appending "..." when content
// was cut. A max below 4 returns the bare prefix without the marker.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Indent prefixes every non-empty line of s with the given prefix
func Indent(s, prefix string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Pluralize returns "n word" or "n words" depending on the count.
// It only handles the regular English plural, which is all the
// diagnostics output needs.
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
