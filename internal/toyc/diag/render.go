// File: render.go
// Title: Diagnostic Rendering
// Description: Renders diagnostics in the canonical one-line form
//              <file>:<line>:<col>: <severity>: <message>, optionally
//              followed by the source line and a caret marking the
//              offending column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial rendering implementation

package diag

import (
	"fmt"
	"strings"
)

// caretMarker is appended below the source line at the diagnostic column
const caretMarker = "^~~ happened here"

// RenderOptions controls how diagnostics are rendered
type RenderOptions struct {
	ShowSource bool // Include the source line and a caret under it
	Color      bool // Apply terminal styles
}

// Format renders one diagnostic of this bag
func (b *Bag) Format(d Diagnostic, opts RenderOptions) string {
	position := fmt.Sprintf("%s:%d:%d", b.filename, d.Pos.Line, d.Pos.Column)
	severity := d.Severity.String()

	if opts.Color {
		position = PositionStyle.Render(position)
		severity = severityStyle(d.Severity).Render(severity)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s: %s", position, severity, d.Message))

	if opts.ShowSource {
		if line, ok := b.Line(d.Pos.Line); ok {
			caret := caretMarker
			if opts.Color {
				caret = CaretStyle.Render(caret)
			}
			col := d.Pos.Column
			if col < 1 {
				col = 1
			}
			sb.WriteString("\n")
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", col-1))
			sb.WriteString(caret)
		}
	}

	return sb.String()
}

// FormatAll renders every diagnostic in detection order, one per line
// (or one block per diagnostic when source excerpts are enabled)
func (b *Bag) FormatAll(opts RenderOptions) string {
	if len(b.diags) == 0 {
		return ""
	}

	parts := make([]string, 0, len(b.diags))
	for _, d := range b.diags {
		parts = append(parts, b.Format(d, opts))
	}
	return strings.Join(parts, "\n")
}
