// Package error provides structured, contextual errors for the toyc tooling.
//
// Package: error
// Title: toyc Structured Errors
// Description: Errors carry a code, a severity, the failing operation, and
//              free-form details while staying compatible with the standard
//              errors package (Unwrap, errors.Is). They describe failures of
//              the tool itself (I/O, configuration, option validation,
//              grammar construction); problems in compiled source code are
//              diagnostics, not errors, and live in internal/toyc/diag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial implementation
package error
