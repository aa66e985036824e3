// File: diag.go
// Title: ToyC Diagnostics Collection
// Description: Defines diagnostic records for lexical, syntactic, and
//              structural problems and the per-file bag that collects
//              them in detection order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial diagnostics implementation

package diag

import (
	"fmt"
	"strings"

	"github.com/msto63/toyc/internal/toyc/ast"
)

// Severity classifies how serious a diagnostic is
type Severity int

const (
	// SeverityError marks a diagnostic that fails the compilation
	SeverityError Severity = iota

	// SeverityWarning marks a suspicious but accepted construct
	SeverityWarning

	// SeverityNote carries supplementary information
	SeverityNote
)

// String returns the rendered form of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Kind classifies which front-end stage detected the problem
type Kind int

const (
	// KindLexical covers problems found while scanning characters,
	// such as unterminated literals or integer overflow
	KindLexical Kind = iota

	// KindSyntax covers token-level problems found while parsing
	KindSyntax

	// KindStructural covers conditions that end a file's parse early,
	// such as running out of input during recovery
	KindStructural
)

// String returns the rendered form of the kind
func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// Diagnostic is one recorded problem in a source file
type Diagnostic struct {
	Pos      ast.Position // Where the problem was detected
	Severity Severity     // How serious it is
	Kind     Kind         // Which stage detected it
	Message  string       // Human-readable description
}

// String returns a compact positional rendering without the filename
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Pos.Line, d.Pos.Column, d.Severity, d.Message)
}

// Bag collects the diagnostics of one source file in detection order,
// which for a single-pass front end is left-to-right source order.
// A Bag belongs to exactly one compilation unit and is not safe for
// concurrent use; parallel compilations each own their bag.
type Bag struct {
	filename string
	lines    []string
	diags    []Diagnostic
}

// NewBag creates a diagnostics bag for one source file. The source
// text is retained line by line so diagnostics can be rendered with
// their source excerpt.
func NewBag(filename string, src []byte) *Bag {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Bag{
		filename: filename,
		lines:    lines,
		diags:    make([]Diagnostic, 0, 4),
	}
}

// Filename returns the name of the source file this bag belongs to
func (b *Bag) Filename() string {
	return b.filename
}

// Report appends a diagnostic record
func (b *Bag) Report(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// Error records an error diagnostic at the given position
func (b *Bag) Error(kind Kind, pos ast.Position, format string, args ...interface{}) {
	b.Report(Diagnostic{
		Pos:      pos,
		Severity: SeverityError,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warning records a warning diagnostic at the given position
func (b *Bag) Warning(kind Kind, pos ast.Position, format string, args ...interface{}) {
	b.Report(Diagnostic{
		Pos:      pos,
		Severity: SeverityWarning,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Note records a note diagnostic at the given position
func (b *Bag) Note(kind Kind, pos ast.Position, format string, args ...interface{}) {
	b.Report(Diagnostic{
		Pos:      pos,
		Severity: SeverityNote,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error-severity diagnostic was recorded
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics
func (b *Bag) ErrorCount() int {
	count := 0
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			count++
		}
	}
	return count
}

// Count returns the total number of diagnostics of any severity
func (b *Bag) Count() int {
	return len(b.diags)
}

// All returns the diagnostics in detection order
func (b *Bag) All() []Diagnostic {
	out := make([]Diagnostic, len(b.diags))
	copy(out, b.diags)
	return out
}

// Line returns the source line with the given 1-based number
func (b *Bag) Line(n int) (string, bool) {
	if n < 1 || n > len(b.lines) {
		return "", false
	}
	return b.lines[n-1], true
}
