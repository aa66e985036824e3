// File: style.go
// Title: Diagnostic Rendering Styles
// Description: Terminal styles for rendered diagnostics. Severities,
//              positions, and the source caret each get their own
//              lipgloss style.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial style definitions

package diag

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorError    = lipgloss.Color("#EF4444") // Red
	ColorWarning  = lipgloss.Color("#F59E0B") // Amber
	ColorNote     = lipgloss.Color("#06B6D4") // Cyan
	ColorPosition = lipgloss.Color("#8B5CF6") // Violet
	ColorCaret    = lipgloss.Color("#06B6D4") // Cyan
)

// Rendering styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorNote)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorPosition)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorCaret)
)

// severityStyle returns the style for a severity label
func severityStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityError:
		return ErrorStyle
	case SeverityWarning:
		return WarningStyle
	default:
		return NoteStyle
	}
}
