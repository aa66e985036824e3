// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels attached to structured errors,
//              used for logging emphasis and triage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial implementation

package error

// Severity expresses how serious an error is
type Severity int

const (
	// SeverityLow marks recoverable conditions of little consequence
	SeverityLow Severity = iota

	// SeverityMedium is the default for ordinary operational failures
	SeverityMedium

	// SeverityHigh marks failures that abort the current operation
	SeverityHigh

	// SeverityCritical marks failures that invalidate the whole process,
	// such as a defective grammar table
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
