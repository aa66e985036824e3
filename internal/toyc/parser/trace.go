// File: trace.go
// Title: Parse Trace Events
// Description: Records which nonterminal was entered, which lookahead
//              token drove the choice, and which production was chosen.
//              Tracing is pure observation and has no effect on parsing
//              results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-14 v0.1.0: Initial trace support

package parser

import (
	"fmt"
	"strings"
)

// TraceEvent is one entered nonterminal during a parse
type TraceEvent struct {
	Depth       int         // Nesting depth of the nonterminal's procedure
	NonTerminal NonTerminal // Nonterminal that was entered
	Lookahead   Token       // Token that drove the choice
	Alternative int         // Chosen alternative, in grammar declaration order
	Production  string      // Rendered chosen production
}

// String renders the event as one indented trace line
func (e TraceEvent) String() string {
	return fmt.Sprintf("%s%s, lookahead %s: %s",
		strings.Repeat("  ", e.Depth), e.NonTerminal, e.Lookahead, e.Production)
}
