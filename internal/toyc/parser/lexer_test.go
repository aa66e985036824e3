// File: lexer_test.go
// Title: ToyC Lexer Tests
// Description: Tests token classification, literal decoding, comment
//              handling, position tracking, and lexical error recovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-13 v0.1.0: Initial lexer tests

package parser

import (
	"strings"
	"testing"

	"github.com/msto63/toyc/internal/toyc/ast"
	"github.com/msto63/toyc/internal/toyc/diag"
)

func lexAll(input string) ([]Token, *diag.Bag) {
	bag := diag.NewBag("test.tc", []byte(input))
	l := NewLexer("test.tc", input, bag)
	return l.Tokenize(), bag
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "keywords versus identifiers",
			input: "int foo_1 while whilex",
			expected: []Token{
				{Type: TokenInt, Lexeme: "int", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenIdentifier, Lexeme: "foo_1", Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
				{Type: TokenWhile, Lexeme: "while", Pos: ast.Position{Line: 1, Column: 11, Offset: 10}},
				{Type: TokenIdentifier, Lexeme: "whilex", Pos: ast.Position{Line: 1, Column: 17, Offset: 16}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 23, Offset: 22}},
			},
		},
		{
			name:  "operator classes",
			input: "< <= == != > >= + - || * / % && = !",
			expected: []Token{
				{Type: TokenRelOp, Lexeme: "<", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenRelOp, Lexeme: "<=", Pos: ast.Position{Line: 1, Column: 3, Offset: 2}},
				{Type: TokenRelOp, Lexeme: "==", Pos: ast.Position{Line: 1, Column: 6, Offset: 5}},
				{Type: TokenRelOp, Lexeme: "!=", Pos: ast.Position{Line: 1, Column: 9, Offset: 8}},
				{Type: TokenRelOp, Lexeme: ">", Pos: ast.Position{Line: 1, Column: 12, Offset: 11}},
				{Type: TokenRelOp, Lexeme: ">=", Pos: ast.Position{Line: 1, Column: 14, Offset: 13}},
				{Type: TokenAddOp, Lexeme: "+", Pos: ast.Position{Line: 1, Column: 17, Offset: 16}},
				{Type: TokenAddOp, Lexeme: "-", Pos: ast.Position{Line: 1, Column: 19, Offset: 18}},
				{Type: TokenAddOp, Lexeme: "||", Pos: ast.Position{Line: 1, Column: 21, Offset: 20}},
				{Type: TokenMulOp, Lexeme: "*", Pos: ast.Position{Line: 1, Column: 24, Offset: 23}},
				{Type: TokenMulOp, Lexeme: "/", Pos: ast.Position{Line: 1, Column: 26, Offset: 25}},
				{Type: TokenMulOp, Lexeme: "%", Pos: ast.Position{Line: 1, Column: 28, Offset: 27}},
				{Type: TokenMulOp, Lexeme: "&&", Pos: ast.Position{Line: 1, Column: 30, Offset: 29}},
				{Type: TokenAssign, Lexeme: "=", Pos: ast.Position{Line: 1, Column: 33, Offset: 32}},
				{Type: TokenNot, Lexeme: "!", Pos: ast.Position{Line: 1, Column: 35, Offset: 34}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 36, Offset: 35}},
			},
		},
		{
			name:  "punctuation",
			input: "(){}[],;:",
			expected: []Token{
				{Type: TokenLParen, Lexeme: "(", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenRParen, Lexeme: ")", Pos: ast.Position{Line: 1, Column: 2, Offset: 1}},
				{Type: TokenLCurly, Lexeme: "{", Pos: ast.Position{Line: 1, Column: 3, Offset: 2}},
				{Type: TokenRCurly, Lexeme: "}", Pos: ast.Position{Line: 1, Column: 4, Offset: 3}},
				{Type: TokenLBracket, Lexeme: "[", Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
				{Type: TokenRBracket, Lexeme: "]", Pos: ast.Position{Line: 1, Column: 6, Offset: 5}},
				{Type: TokenComma, Lexeme: ",", Pos: ast.Position{Line: 1, Column: 7, Offset: 6}},
				{Type: TokenSemicolon, Lexeme: ";", Pos: ast.Position{Line: 1, Column: 8, Offset: 7}},
				{Type: TokenColon, Lexeme: ":", Pos: ast.Position{Line: 1, Column: 9, Offset: 8}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 10, Offset: 9}},
			},
		},
		{
			name:  "numbers with leading zeros",
			input: "007 2147483647",
			expected: []Token{
				{Type: TokenNumber, Lexeme: "007", Value: 7, Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenNumber, Lexeme: "2147483647", Value: 2147483647, Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 15, Offset: 14}},
			},
		},
		{
			name:  "positions across lines with line comment",
			input: "int a; // c\nchar b;\n",
			expected: []Token{
				{Type: TokenInt, Lexeme: "int", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenIdentifier, Lexeme: "a", Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
				{Type: TokenSemicolon, Lexeme: ";", Pos: ast.Position{Line: 1, Column: 6, Offset: 5}},
				{Type: TokenChar, Lexeme: "char", Pos: ast.Position{Line: 2, Column: 1, Offset: 12}},
				{Type: TokenIdentifier, Lexeme: "b", Pos: ast.Position{Line: 2, Column: 6, Offset: 17}},
				{Type: TokenSemicolon, Lexeme: ";", Pos: ast.Position{Line: 2, Column: 7, Offset: 18}},
				{Type: TokenEOF, Pos: ast.Position{Line: 3, Column: 1, Offset: 20}},
			},
		},
		{
			name:  "nested block comment",
			input: "a /* x /* y */ z */ b",
			expected: []Token{
				{Type: TokenIdentifier, Lexeme: "a", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenIdentifier, Lexeme: "b", Pos: ast.Position{Line: 1, Column: 21, Offset: 20}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 22, Offset: 21}},
			},
		},
		{
			name:  "char and string literals",
			input: `'a' '' "test"`,
			expected: []Token{
				{Type: TokenCharLit, Lexeme: "a", Pos: ast.Position{Line: 1, Column: 1, Offset: 0}},
				{Type: TokenCharLit, Lexeme: "", Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
				{Type: TokenStringLit, Lexeme: "test", Pos: ast.Position{Line: 1, Column: 8, Offset: 7}},
				{Type: TokenEOF, Pos: ast.Position{Line: 1, Column: 14, Offset: 13}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, bag := lexAll(tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected lexical errors: %v", bag.All())
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("token count = %d, want %d (%v)", len(tokens), len(tt.expected), tokens)
			}
			for i, want := range tt.expected {
				if tokens[i] != want {
					t.Errorf("token %d = %+v, want %+v", i, tokens[i], want)
				}
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErrors int
		wantMsg    string
		wantTokens []TokenType
	}{
		{
			name:       "integer overflow",
			input:      "2147483648",
			wantErrors: 1,
			wantMsg:    "overflows",
			wantTokens: []TokenType{TokenNumber, TokenEOF},
		},
		{
			name:       "lone pipe",
			input:      "a | b",
			wantErrors: 1,
			wantMsg:    "illegal character '|'",
			wantTokens: []TokenType{TokenIdentifier, TokenIdentifier, TokenEOF},
		},
		{
			name:       "lone ampersand",
			input:      "a & b",
			wantErrors: 1,
			wantMsg:    "illegal character '&'",
			wantTokens: []TokenType{TokenIdentifier, TokenIdentifier, TokenEOF},
		},
		{
			name:       "illegal run coalesced",
			input:      "a @#$ b",
			wantErrors: 1,
			wantMsg:    `illegal characters "@#$"`,
			wantTokens: []TokenType{TokenIdentifier, TokenIdentifier, TokenEOF},
		},
		{
			name:       "unterminated string literal",
			input:      `a "bad`,
			wantErrors: 1,
			wantMsg:    "unterminated string literal",
			wantTokens: []TokenType{TokenIdentifier, TokenStringLit, TokenEOF},
		},
		{
			name:       "string literal across line terminator",
			input:      "\"bad\nx\"",
			wantErrors: 2,
			wantMsg:    "unterminated string literal",
			wantTokens: []TokenType{TokenStringLit, TokenIdentifier, TokenStringLit, TokenEOF},
		},
		{
			name:       "unterminated char literal",
			input:      "'a",
			wantErrors: 1,
			wantMsg:    "unterminated character literal",
			wantTokens: []TokenType{TokenCharLit, TokenEOF},
		},
		{
			name:       "char literal with two characters",
			input:      "'ab' x",
			wantErrors: 1,
			wantMsg:    "more than one character",
			wantTokens: []TokenType{TokenCharLit, TokenIdentifier, TokenEOF},
		},
		{
			name:       "unterminated block comment",
			input:      "a /* b",
			wantErrors: 1,
			wantMsg:    "unterminated comment",
			wantTokens: []TokenType{TokenIdentifier, TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, bag := lexAll(tt.input)
			if got := bag.ErrorCount(); got != tt.wantErrors {
				t.Fatalf("error count = %d, want %d (%v)", got, tt.wantErrors, bag.All())
			}
			found := false
			for _, d := range bag.All() {
				if strings.Contains(d.Message, tt.wantMsg) {
					found = true
					if d.Kind != diag.KindLexical {
						t.Errorf("diagnostic kind = %v, want lexical", d.Kind)
					}
				}
			}
			if !found {
				t.Errorf("no diagnostic contains %q: %v", tt.wantMsg, bag.All())
			}
			if len(tokens) != len(tt.wantTokens) {
				t.Fatalf("token count = %d, want %d (%v)", len(tokens), len(tt.wantTokens), tokens)
			}
			for i, want := range tt.wantTokens {
				if tokens[i].Type != want {
					t.Errorf("token %d type = %v, want %v", i, tokens[i].Type, want)
				}
			}
		})
	}
}

func TestLexerRecoveryValues(t *testing.T) {
	t.Run("overflowed number carries value zero", func(t *testing.T) {
		tokens, _ := lexAll("2147483648")
		if tokens[0].Value != 0 {
			t.Errorf("overflowed literal value = %d, want 0", tokens[0].Value)
		}
		if tokens[0].Lexeme != "2147483648" {
			t.Errorf("overflowed literal lexeme = %q, want raw digits", tokens[0].Lexeme)
		}
	})

	t.Run("unterminated string keeps partial value", func(t *testing.T) {
		tokens, _ := lexAll(`"par`)
		if tokens[0].Lexeme != "par" {
			t.Errorf("partial string lexeme = %q, want %q", tokens[0].Lexeme, "par")
		}
	})

	t.Run("long char literal keeps first character", func(t *testing.T) {
		tokens, _ := lexAll("'ab'")
		if tokens[0].Lexeme != "a" {
			t.Errorf("char lexeme = %q, want %q", tokens[0].Lexeme, "a")
		}
	})
}

func TestLexerEOFIsSticky(t *testing.T) {
	bag := diag.NewBag("test.tc", []byte("a"))
	l := NewLexer("test.tc", "a", bag)

	if tok := l.NextToken(); tok.Type != TokenIdentifier {
		t.Fatalf("first token = %v, want identifier", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokenEOF {
			t.Fatalf("call %d after end = %v, want EOF", i, tok.Type)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TokenIdentifier, Lexeme: "main"}
	if got := tok.String(); got != `(<ID>, "main")` {
		t.Errorf("token string = %q, want %q", got, `(<ID>, "main")`)
	}
}
