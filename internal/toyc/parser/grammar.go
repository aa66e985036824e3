// File: grammar.go
// Title: ToyC Grammar Table
// Description: Defines the ToyC production set and derives the predict
//              table that drives the parser: nullability, FIRST and
//              FOLLOW sets computed by fixpoint iteration, and one
//              predict set per production alternative. The table is
//              built once per process and validated statically.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-13 v0.1.0: Initial grammar table

package parser

import (
	"math/bits"
	"strings"
	"sync"

	toycerror "github.com/msto63/toyc/foundation/core/error"
)

// NonTerminal identifies a grammar nonterminal. The primed names
// follow the grammar the predict sets were derived from and appear in
// parse traces.
type NonTerminal int

const (
	NTProgram NonTerminal = iota
	NTDefinition
	NTDefinitionSuffix // Definition'
	NTType
	NTFunctionHeader
	NTFunctionBody
	NTFormalParamList
	NTFormalParamListTail // FormalParamList'
	NTStatement
	NTExpressionStatement
	NTBreakStatement
	NTCompoundStatement
	NTCompoundDecls // CompoundStatement'
	NTCompoundStmts // CompoundStatement''
	NTIfStatement
	NTElseClause // IfStatement'
	NTNullStatement
	NTReturnStatement
	NTReturnValue // ReturnStatement'
	NTWhileStatement
	NTReadStatement
	NTReadTail // ReadStatement'
	NTWriteStatement
	NTNewLineStatement
	NTExpression
	NTRelopExpression
	NTRelopTail // RelopExpression'
	NTSimpleExpression
	NTSimpleTail // SimpleExpression'
	NTTerm
	NTTermTail // Term'
	NTPrimary
	NTPrimarySuffix // Primary'
	NTActualParameters
	NTActualParamsTail // ActualParameters'

	numNonTerminals
)

// nonTerminalNames holds the grammar names, including the primes
var nonTerminalNames = [numNonTerminals]string{
	NTProgram:             "ToyCProgram",
	NTDefinition:          "Definition",
	NTDefinitionSuffix:    "Definition'",
	NTType:                "Type",
	NTFunctionHeader:      "FunctionHeader",
	NTFunctionBody:        "FunctionBody",
	NTFormalParamList:     "FormalParamList",
	NTFormalParamListTail: "FormalParamList'",
	NTStatement:           "Statement",
	NTExpressionStatement: "ExpressionStatement",
	NTBreakStatement:      "BreakStatement",
	NTCompoundStatement:   "CompoundStatement",
	NTCompoundDecls:       "CompoundStatement'",
	NTCompoundStmts:       "CompoundStatement''",
	NTIfStatement:         "IfStatement",
	NTElseClause:          "IfStatement'",
	NTNullStatement:       "NullStatement",
	NTReturnStatement:     "ReturnStatement",
	NTReturnValue:         "ReturnStatement'",
	NTWhileStatement:      "WhileStatement",
	NTReadStatement:       "ReadStatement",
	NTReadTail:            "ReadStatement'",
	NTWriteStatement:      "WriteStatement",
	NTNewLineStatement:    "NewLineStatement",
	NTExpression:          "Expression",
	NTRelopExpression:     "RelopExpression",
	NTRelopTail:           "RelopExpression'",
	NTSimpleExpression:    "SimpleExpression",
	NTSimpleTail:          "SimpleExpression'",
	NTTerm:                "Term",
	NTTermTail:            "Term'",
	NTPrimary:             "Primary",
	NTPrimarySuffix:       "Primary'",
	NTActualParameters:    "ActualParameters",
	NTActualParamsTail:    "ActualParameters'",
}

// String returns the grammar name of the nonterminal
func (nt NonTerminal) String() string {
	if nt < 0 || nt >= numNonTerminals {
		return "unknown"
	}
	return nonTerminalNames[nt]
}

// tokenSet is a set of token types as a single-word bitmask
type tokenSet uint64

func bit(tt TokenType) tokenSet {
	return tokenSet(1) << uint(tt)
}

func (s tokenSet) has(tt TokenType) bool {
	return s&bit(tt) != 0
}

func (s tokenSet) isEmpty() bool {
	return s == 0
}

// merge unions o into s and reports whether s grew
func (s *tokenSet) merge(o tokenSet) bool {
	old := *s
	*s |= o
	return *s != old
}

func (s tokenSet) intersect(o tokenSet) tokenSet {
	return s & o
}

// tokens returns the members in token-type order
func (s tokenSet) tokens() []TokenType {
	out := make([]TokenType, 0, bits.OnesCount64(uint64(s)))
	for tt := TokenType(0); int(tt) < numTokenTypes; tt++ {
		if s.has(tt) {
			out = append(out, tt)
		}
	}
	return out
}

// String lists the members in their expected-token form
func (s tokenSet) String() string {
	parts := make([]string, 0, 8)
	for _, tt := range s.tokens() {
		parts = append(parts, tt.Describe())
	}
	return strings.Join(parts, " ")
}

// symbol is one grammar symbol: a terminal token type or a nonterminal
type symbol struct {
	tt   TokenType
	nt   NonTerminal
	isNT bool
}

func term(tt TokenType) symbol {
	return symbol{tt: tt}
}

func nonterm(nt NonTerminal) symbol {
	return symbol{nt: nt, isNT: true}
}

// String returns the symbol as written in production strings
func (s symbol) String() string {
	if s.isNT {
		return s.nt.String()
	}
	return s.tt.Describe()
}

// productions holds the grammar: per nonterminal, its alternatives in
// declaration order. An empty right-hand side derives the empty string.
// The alternative indices here are the ones Predict returns and the
// parser dispatches on.
var productions = [numNonTerminals][][]symbol{
	NTProgram: {
		{nonterm(NTDefinition), nonterm(NTProgram)},
		{},
	},
	NTDefinition: {
		{nonterm(NTType), term(TokenIdentifier), nonterm(NTDefinitionSuffix)},
	},
	NTDefinitionSuffix: {
		{term(TokenSemicolon)},
		{nonterm(NTFunctionHeader), nonterm(NTFunctionBody)},
	},
	NTType: {
		{term(TokenInt)},
		{term(TokenChar)},
	},
	NTFunctionHeader: {
		{term(TokenLParen), nonterm(NTFormalParamList), term(TokenRParen)},
	},
	NTFunctionBody: {
		{nonterm(NTCompoundStatement)},
	},
	NTFormalParamList: {
		{nonterm(NTType), term(TokenIdentifier), nonterm(NTFormalParamListTail)},
		{},
	},
	NTFormalParamListTail: {
		{term(TokenComma), nonterm(NTType), term(TokenIdentifier), nonterm(NTFormalParamListTail)},
		{},
	},
	NTStatement: {
		{nonterm(NTExpressionStatement)},
		{nonterm(NTBreakStatement)},
		{nonterm(NTCompoundStatement)},
		{nonterm(NTIfStatement)},
		{nonterm(NTNullStatement)},
		{nonterm(NTReturnStatement)},
		{nonterm(NTWhileStatement)},
		{nonterm(NTReadStatement)},
		{nonterm(NTWriteStatement)},
		{nonterm(NTNewLineStatement)},
	},
	NTExpressionStatement: {
		{nonterm(NTExpression), term(TokenSemicolon)},
	},
	NTBreakStatement: {
		{term(TokenBreak), term(TokenSemicolon)},
	},
	NTCompoundStatement: {
		{term(TokenLCurly), nonterm(NTCompoundDecls), term(TokenRCurly)},
	},
	NTCompoundDecls: {
		{nonterm(NTType), term(TokenIdentifier), term(TokenSemicolon), nonterm(NTCompoundDecls)},
		{nonterm(NTCompoundStmts)},
	},
	NTCompoundStmts: {
		{nonterm(NTStatement), nonterm(NTCompoundStmts)},
		{},
	},
	NTIfStatement: {
		{term(TokenIf), term(TokenLParen), nonterm(NTExpression), term(TokenRParen), nonterm(NTStatement), nonterm(NTElseClause)},
	},
	NTElseClause: {
		{term(TokenElse), nonterm(NTStatement)},
		{},
	},
	NTNullStatement: {
		{term(TokenSemicolon)},
	},
	NTReturnStatement: {
		{term(TokenReturn), nonterm(NTReturnValue)},
	},
	NTReturnValue: {
		{nonterm(NTExpression), term(TokenSemicolon)},
		{term(TokenSemicolon)},
	},
	NTWhileStatement: {
		{term(TokenWhile), term(TokenLParen), nonterm(NTExpression), term(TokenRParen), nonterm(NTStatement)},
	},
	NTReadStatement: {
		{term(TokenRead), term(TokenLParen), term(TokenIdentifier), nonterm(NTReadTail), term(TokenRParen), term(TokenSemicolon)},
	},
	NTReadTail: {
		{term(TokenComma), term(TokenIdentifier), nonterm(NTReadTail)},
		{},
	},
	NTWriteStatement: {
		{term(TokenWrite), term(TokenLParen), nonterm(NTActualParameters), term(TokenRParen), term(TokenSemicolon)},
	},
	NTNewLineStatement: {
		{term(TokenNewline), term(TokenSemicolon)},
	},
	NTExpression: {
		{term(TokenIdentifier), term(TokenAssign), nonterm(NTExpression)},
		{nonterm(NTRelopExpression)},
	},
	NTRelopExpression: {
		{nonterm(NTSimpleExpression), nonterm(NTRelopTail)},
	},
	NTRelopTail: {
		{term(TokenRelOp), nonterm(NTSimpleExpression)},
		{},
	},
	NTSimpleExpression: {
		{nonterm(NTTerm), nonterm(NTSimpleTail)},
	},
	NTSimpleTail: {
		{term(TokenAddOp), nonterm(NTTerm), nonterm(NTSimpleTail)},
		{},
	},
	NTTerm: {
		{nonterm(NTPrimary), nonterm(NTTermTail)},
	},
	NTTermTail: {
		{term(TokenMulOp), nonterm(NTPrimary), nonterm(NTTermTail)},
		{},
	},
	NTPrimary: {
		{term(TokenIdentifier), nonterm(NTPrimarySuffix)},
		{term(TokenNumber)},
		{term(TokenCharLit)},
		{term(TokenStringLit)},
		{term(TokenLParen), nonterm(NTExpression), term(TokenRParen)},
		{term(TokenAddOp), nonterm(NTPrimary)},
		{term(TokenNot), nonterm(NTPrimary)},
	},
	NTPrimarySuffix: {
		{term(TokenLParen), nonterm(NTActualParameters), term(TokenRParen)},
		{},
	},
	NTActualParameters: {
		{nonterm(NTExpression), nonterm(NTActualParamsTail)},
		{},
	},
	NTActualParamsTail: {
		{term(TokenComma), nonterm(NTExpression), nonterm(NTActualParamsTail)},
		{},
	},
}

// peekResolved lists the token kinds per nonterminal whose alternative
// overlap is sanctioned because the parser disambiguates them with a
// one-token peek past the current lookahead. The only such point is
// Expression, where an identifier begins both the assignment and the
// RelopExpression alternative; the parser peeks for '='.
var peekResolved = map[NonTerminal]tokenSet{
	NTExpression: bit(TokenIdentifier),
}

// Grammar is the derived predict table. It is immutable after
// construction; all methods are read-only and safe for concurrent use.
type Grammar struct {
	nullable [numNonTerminals]bool
	first    [numNonTerminals]tokenSet
	follow   [numNonTerminals]tokenSet
	predict  [numNonTerminals][]tokenSet
}

// grammarOnce builds the process-wide table exactly once
var grammarOnce = sync.OnceValues(newGrammar)

// LoadGrammar returns the process-wide grammar table, constructing and
// validating it on first use. A non-nil error means the production set
// itself is defective; this is a build defect, never an input problem.
func LoadGrammar() (*Grammar, error) {
	return grammarOnce()
}

func newGrammar() (*Grammar, error) {
	g := &Grammar{}
	g.computeNullable()
	g.computeFirst()
	g.computeFollow()
	g.computePredict()
	g.resolveDanglingElse()
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// computeNullable marks every nonterminal that can derive the empty
// string, iterating to a fixpoint
func (g *Grammar) computeNullable() {
	for changed := true; changed; {
		changed = false
		for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
			if g.nullable[nt] {
				continue
			}
			for _, rhs := range productions[nt] {
				if g.seqNullable(rhs) {
					g.nullable[nt] = true
					changed = true
					break
				}
			}
		}
	}
}

// seqNullable reports whether every symbol of the sequence can derive
// the empty string
func (g *Grammar) seqNullable(rhs []symbol) bool {
	for _, s := range rhs {
		if !s.isNT || !g.nullable[s.nt] {
			return false
		}
	}
	return true
}

// computeFirst derives the FIRST set of every nonterminal
func (g *Grammar) computeFirst() {
	for changed := true; changed; {
		changed = false
		for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
			for _, rhs := range productions[nt] {
				if g.first[nt].merge(g.seqFirst(rhs)) {
					changed = true
				}
			}
		}
	}
}

// seqFirst returns the terminals that can begin the sequence
func (g *Grammar) seqFirst(rhs []symbol) tokenSet {
	var set tokenSet
	for _, s := range rhs {
		if !s.isNT {
			set.merge(bit(s.tt))
			return set
		}
		set.merge(g.first[s.nt])
		if !g.nullable[s.nt] {
			return set
		}
	}
	return set
}

// computeFollow derives the FOLLOW set of every nonterminal. The start
// symbol is followed by end-of-file.
func (g *Grammar) computeFollow() {
	g.follow[NTProgram].merge(bit(TokenEOF))
	for changed := true; changed; {
		changed = false
		for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
			for _, rhs := range productions[nt] {
				for i, s := range rhs {
					if !s.isNT {
						continue
					}
					rest := rhs[i+1:]
					if g.follow[s.nt].merge(g.seqFirst(rest)) {
						changed = true
					}
					if g.seqNullable(rest) {
						if g.follow[s.nt].merge(g.follow[nt]) {
							changed = true
						}
					}
				}
			}
		}
	}
}

// computePredict derives the predict set of every alternative: the
// FIRST of its right-hand side, extended by the FOLLOW of the
// nonterminal when the right-hand side can derive the empty string
func (g *Grammar) computePredict() {
	for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
		sets := make([]tokenSet, len(productions[nt]))
		for i, rhs := range productions[nt] {
			sets[i] = g.seqFirst(rhs)
			if g.seqNullable(rhs) {
				sets[i].merge(g.follow[nt])
			}
		}
		g.predict[nt] = sets
	}
}

// resolveDanglingElse removes 'else' from the predict set of the empty
// alternative of IfStatement'. 'else' is in both FIRST(else Statement)
// and FOLLOW(IfStatement'); binding the else to the nearest if is the
// sanctioned resolution and is applied here, in the table data, so the
// disjointness check below holds and the parser stays table-pure.
func (g *Grammar) resolveDanglingElse() {
	g.predict[NTElseClause][1] &^= bit(TokenElse)
}

// validate checks the production set statically: every nonterminal has
// productions, is reachable from the start symbol, can derive a
// terminal string, and the predict sets of its alternatives are
// pairwise disjoint (exempting the documented peek-resolved tokens).
// Any violation is a grammar defect reported at construction time.
func (g *Grammar) validate() error {
	for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
		if len(productions[nt]) == 0 {
			return toycerror.Newf("nonterminal %s has no productions", nt).
				WithCode(toycerror.CodeGrammarInvalid).
				WithOperation("grammar.validate")
		}
	}

	if err := g.checkReachable(); err != nil {
		return err
	}
	if err := g.checkProductive(); err != nil {
		return err
	}

	for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
		mask := peekResolved[nt]
		for i := 0; i < len(g.predict[nt]); i++ {
			for j := i + 1; j < len(g.predict[nt]); j++ {
				overlap := g.predict[nt][i].intersect(g.predict[nt][j]) &^ mask
				if !overlap.isEmpty() {
					return toycerror.Newf("predict sets of %s alternatives %d and %d overlap", nt, i, j).
						WithCode(toycerror.CodeGrammarInvalid).
						WithOperation("grammar.validate").
						WithDetail("tokens", overlap.String())
				}
			}
		}
	}
	return nil
}

// checkReachable verifies that every nonterminal occurs in some
// derivation from the start symbol
func (g *Grammar) checkReachable() error {
	var reached [numNonTerminals]bool
	reached[NTProgram] = true
	work := []NonTerminal{NTProgram}
	for len(work) > 0 {
		nt := work[len(work)-1]
		work = work[:len(work)-1]
		for _, rhs := range productions[nt] {
			for _, s := range rhs {
				if s.isNT && !reached[s.nt] {
					reached[s.nt] = true
					work = append(work, s.nt)
				}
			}
		}
	}
	for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
		if !reached[nt] {
			return toycerror.Newf("nonterminal %s is unreachable", nt).
				WithCode(toycerror.CodeGrammarInvalid).
				WithOperation("grammar.validate")
		}
	}
	return nil
}

// checkProductive verifies that every nonterminal can derive a string
// of terminals
func (g *Grammar) checkProductive() error {
	var productive [numNonTerminals]bool
	for changed := true; changed; {
		changed = false
		for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
			if productive[nt] {
				continue
			}
			for _, rhs := range productions[nt] {
				ok := true
				for _, s := range rhs {
					if s.isNT && !productive[s.nt] {
						ok = false
						break
					}
				}
				if ok {
					productive[nt] = true
					changed = true
					break
				}
			}
		}
	}
	for nt := NonTerminal(0); nt < numNonTerminals; nt++ {
		if !productive[nt] {
			return toycerror.Newf("nonterminal %s derives no terminal string", nt).
				WithCode(toycerror.CodeGrammarInvalid).
				WithOperation("grammar.validate")
		}
	}
	return nil
}

// Predict returns the index of the alternative of nt predicted by the
// lookahead token kind, in declaration order, and whether one exists.
// The result is a pure function of its arguments. At the documented
// peek-resolved point (Expression on an identifier) the first matching
// alternative is returned and the parser refines the choice with a
// second token.
func (g *Grammar) Predict(nt NonTerminal, lookahead TokenType) (int, bool) {
	for i, set := range g.predict[nt] {
		if set.has(lookahead) {
			return i, true
		}
	}
	return 0, false
}

// Alternatives returns the number of alternatives of nt
func (g *Grammar) Alternatives(nt NonTerminal) int {
	return len(productions[nt])
}

// Nullable reports whether nt can derive the empty string
func (g *Grammar) Nullable(nt NonTerminal) bool {
	return g.nullable[nt]
}

// First returns the FIRST set of nt
func (g *Grammar) First(nt NonTerminal) tokenSet {
	return g.first[nt]
}

// Follow returns the FOLLOW set of nt
func (g *Grammar) Follow(nt NonTerminal) tokenSet {
	return g.follow[nt]
}

// PredictSet returns the predict set of one alternative of nt
func (g *Grammar) PredictSet(nt NonTerminal, alt int) tokenSet {
	return g.predict[nt][alt]
}

// ProductionString renders one production, for example
// "CompoundStatement' -> Type <identifier> ; CompoundStatement'"
func (g *Grammar) ProductionString(nt NonTerminal, alt int) string {
	rhs := productions[nt][alt]
	if len(rhs) == 0 {
		return nt.String() + " -> <empty>"
	}
	parts := make([]string, 0, len(rhs)+2)
	parts = append(parts, nt.String(), "->")
	for _, s := range rhs {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}
