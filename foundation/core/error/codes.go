// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the toyc tooling for
//              classifying operational failures. Codes identify classes of
//              failure for logging and exit-code decisions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial set of codes

package error

// Code identifies a class of operational failure
type Code string

const (
	// General codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Driver and filesystem codes
	CodeIOFailed    Code = "IO_FAILED"
	CodeWatchFailed Code = "WATCH_FAILED"

	// Configuration codes
	CodeConfigMissing Code = "CONFIG_MISSING"
	CodeConfigInvalid Code = "CONFIG_INVALID"

	// Front-end construction codes
	CodeOptionInvalid  Code = "OPTION_INVALID"
	CodeGrammarInvalid Code = "GRAMMAR_INVALID"
)

// GetSeverityFromCode returns the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeGrammarInvalid:
		return SeverityCritical
	case CodeIOFailed, CodeWatchFailed:
		return SeverityHigh
	case CodeConfigMissing, CodeConfigInvalid, CodeOptionInvalid, CodeInvalidInput:
		return SeverityMedium
	default:
		return SeverityMedium
	}
}

// IsValid reports whether the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeIOFailed, CodeWatchFailed,
		CodeConfigMissing, CodeConfigInvalid,
		CodeOptionInvalid, CodeGrammarInvalid:
		return true
	}
	return false
}

// String returns the code as a string
func (c Code) String() string {
	return string(c)
}
