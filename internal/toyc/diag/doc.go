// File: doc.go
// Title: Package Documentation for ToyC Diagnostics
// Description: Provides package-level documentation for the diag package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package diag collects and renders compiler diagnostics.
//
// Each compilation unit owns one Bag. The lexer and parser append
// Diagnostic records as they encounter problems, so the bag's order is
// detection order, which for a single-pass front end is left-to-right
// source order. Reporting never aborts anything; deciding what an
// error means (exit codes, stopping after too many) is the caller's
// concern.
//
// Rendering follows the canonical one-line form
//
//	<file>:<line>:<col>: <severity>: <message>
//
// optionally followed by the offending source line with a caret:
//
//	test.tc:3:9: error: got: (RELOP, "<"), expected: ;
//	while (a < 5) a = a + 1
//	        ^~~ happened here
package diag
