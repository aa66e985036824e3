// File: doc.go
// Title: Package Documentation for the ToyC Parser
// Description: Provides package-level documentation for the parser
//              package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-13 v0.1.0: Initial documentation

// Package parser implements the ToyC front end: lexical analysis and
// predictive recursive-descent parsing into an AST.
//
// The Lexer turns source text into tokens with line, column, and offset
// positions. Operators are classified into one token type per class
// (RELOP, ADDOP, MULOP); the concrete operator travels in the lexeme.
//
// The Parser has one procedure per grammar nonterminal. Each procedure
// consults the process-wide Grammar table with the current lookahead
// token to choose its production; the table carries predict sets
// derived from FIRST and FOLLOW and is validated for pairwise
// disjointness when it is built, so a grammar defect surfaces at
// construction time rather than during a parse. Exactly two decision
// points look one token past the lookahead: an identifier followed by
// '=' (assignment versus comparison) and the token after a definition
// name (';' versus '(').
//
// Syntax errors are reported to a diag.Bag and followed by panic-mode
// recovery to the nearest statement boundary, so one mistake yields one
// diagnostic and a partial AST is always returned.
package parser
