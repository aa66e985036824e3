// File: token.go
// Title: ToyC Token Definitions
// Description: Defines the token types produced by the lexer, the
//              keyword table, and the canonical token rendering used
//              by debug output and error messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-13 v0.1.0: Initial token definitions

package parser

import (
	"fmt"

	"github.com/msto63/toyc/internal/toyc/ast"
)

// TokenType identifies the class of a token
type TokenType int

const (
	// TokenEOF marks the end of the input
	TokenEOF TokenType = iota

	// TokenIdentifier is a name: a letter followed by letters,
	// digits, or underscores
	TokenIdentifier

	// TokenNumber is an integer literal
	TokenNumber

	// TokenCharLit is a character literal
	TokenCharLit

	// TokenStringLit is a string literal
	TokenStringLit

	// Keywords. The grammar derives only the first ten; the rest are
	// reserved words that scan as keywords but appear in no production.
	TokenInt
	TokenChar
	TokenIf
	TokenElse
	TokenWhile
	TokenRead
	TokenWrite
	TokenReturn
	TokenBreak
	TokenNewline
	TokenDo
	TokenFor
	TokenSwitch
	TokenCase
	TokenDefault
	TokenContinue

	// Operator classes. One token type per class, the concrete
	// operator is carried in the lexeme.
	TokenRelOp  // == != < <= >= >
	TokenAddOp  // + - ||
	TokenMulOp  // * / % &&
	TokenAssign // =
	TokenNot    // !

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLCurly
	TokenRCurly
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenSemicolon
	TokenColon
)

// numTokenTypes is the number of distinct token types; token sets are
// represented as single-word bitmasks indexed by TokenType
const numTokenTypes = int(TokenColon) + 1

// keywords maps reserved words to their token types
var keywords = map[string]TokenType{
	"int":      TokenInt,
	"char":     TokenChar,
	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"read":     TokenRead,
	"write":    TokenWrite,
	"return":   TokenReturn,
	"break":    TokenBreak,
	"newline":  TokenNewline,
	"do":       TokenDo,
	"for":      TokenFor,
	"switch":   TokenSwitch,
	"case":     TokenCase,
	"default":  TokenDefault,
	"continue": TokenContinue,
}

// String returns the token class name used in token dumps
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdentifier:
		return "ID"
	case TokenNumber:
		return "NUMBER"
	case TokenCharLit:
		return "CHARLITERAL"
	case TokenStringLit:
		return "STRING"
	case TokenInt:
		return "INT"
	case TokenChar:
		return "CHAR"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenWhile:
		return "WHILE"
	case TokenRead:
		return "READ"
	case TokenWrite:
		return "WRITE"
	case TokenReturn:
		return "RETURN"
	case TokenBreak:
		return "BREAK"
	case TokenNewline:
		return "NEWLINE"
	case TokenDo:
		return "DO"
	case TokenFor:
		return "FOR"
	case TokenSwitch:
		return "SWITCH"
	case TokenCase:
		return "CASE"
	case TokenDefault:
		return "DEFAULT"
	case TokenContinue:
		return "CONTINUE"
	case TokenRelOp:
		return "RELOP"
	case TokenAddOp:
		return "ADDOP"
	case TokenMulOp:
		return "MULOP"
	case TokenAssign:
		return "ASSIGNOP"
	case TokenNot:
		return "NOT"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenLCurly:
		return "LCURLY"
	case TokenRCurly:
		return "RCURLY"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenComma:
		return "COMMA"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenColon:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// Describe returns the form of the token type used in expected-token
// lists: keywords and punctuation by their source text, open classes
// in angle brackets
func (t TokenType) Describe() string {
	switch t {
	case TokenEOF:
		return "<EOF>"
	case TokenIdentifier:
		return "<identifier>"
	case TokenNumber:
		return "<number>"
	case TokenCharLit:
		return "<char literal>"
	case TokenStringLit:
		return "<string literal>"
	case TokenRelOp:
		return "<relop>"
	case TokenAddOp:
		return "<addop>"
	case TokenMulOp:
		return "<mulop>"
	case TokenAssign:
		return "="
	case TokenNot:
		return "!"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLCurly:
		return "{"
	case TokenRCurly:
		return "}"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenColon:
		return ":"
	default:
		for text, tt := range keywords {
			if tt == t {
				return text
			}
		}
		return "<unknown>"
	}
}

// IsKeyword reports whether the token type is a reserved word
func (t TokenType) IsKeyword() bool {
	return t >= TokenInt && t <= TokenContinue
}

// Token is one lexical unit of a source file. Tokens are immutable
// once produced; the lexer hands them to the parser one at a time.
type Token struct {
	Type   TokenType    // Token class
	Lexeme string       // Attribute text: name, digit run, decoded literal, operator
	Value  int32        // Decoded value for TokenNumber
	Pos    ast.Position // Position of the first character
}

// String renders the token in the canonical (<CLASS>, "lexeme") form
func (t Token) String() string {
	return fmt.Sprintf("(<%s>, %q)", t.Type, t.Lexeme)
}
