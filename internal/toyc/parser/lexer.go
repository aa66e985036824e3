// File: lexer.go
// Title: ToyC Lexical Analyzer
// Description: Converts ToyC source text into a stream of tokens with
//              line, column, and offset positions. Skips whitespace and
//              comments, classifies keywords and operator classes, and
//              reports lexical problems through the diagnostics bag
//              while continuing to scan.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-13 v0.1.0: Initial lexer implementation

package parser

import (
	"strconv"
	"strings"

	"github.com/msto63/toyc/internal/toyc/ast"
	"github.com/msto63/toyc/internal/toyc/diag"
)

// Lexer performs lexical analysis of one ToyC source file. It holds no
// state across files; a fresh lexer is created per compilation unit.
type Lexer struct {
	filename string
	input    string
	bag      *diag.Bag
	position int  // Offset of the current char
	readPos  int  // Offset after the current char
	ch       byte // Current char under examination, 0 at end of input
	line     int  // Line of the current char (1-based)
	column   int  // Column of the current char (1-based)
}

// NewLexer creates a lexer over the given source text. Lexical errors
// are appended to the bag; scanning always continues past them.
func NewLexer(filename, input string, bag *diag.Bag) *Lexer {
	l := &Lexer{
		filename: filename,
		input:    input,
		bag:      bag,
		line:     1,
		column:   0,
	}
	l.readChar()
	return l
}

// NextToken returns the next token. At end of input it returns an EOF
// token, and keeps returning it on every further call.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		if l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*') {
			l.skipComment()
			continue
		}

		pos := l.pos()

		switch l.ch {
		case 0:
			return Token{Type: TokenEOF, Pos: pos}
		case '(':
			l.readChar()
			return Token{Type: TokenLParen, Lexeme: "(", Pos: pos}
		case ')':
			l.readChar()
			return Token{Type: TokenRParen, Lexeme: ")", Pos: pos}
		case '{':
			l.readChar()
			return Token{Type: TokenLCurly, Lexeme: "{", Pos: pos}
		case '}':
			l.readChar()
			return Token{Type: TokenRCurly, Lexeme: "}", Pos: pos}
		case '[':
			l.readChar()
			return Token{Type: TokenLBracket, Lexeme: "[", Pos: pos}
		case ']':
			l.readChar()
			return Token{Type: TokenRBracket, Lexeme: "]", Pos: pos}
		case ',':
			l.readChar()
			return Token{Type: TokenComma, Lexeme: ",", Pos: pos}
		case ';':
			l.readChar()
			return Token{Type: TokenSemicolon, Lexeme: ";", Pos: pos}
		case ':':
			l.readChar()
			return Token{Type: TokenColon, Lexeme: ":", Pos: pos}
		case '=':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenRelOp, Lexeme: "==", Pos: pos}
			}
			l.readChar()
			return Token{Type: TokenAssign, Lexeme: "=", Pos: pos}
		case '!':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenRelOp, Lexeme: "!=", Pos: pos}
			}
			l.readChar()
			return Token{Type: TokenNot, Lexeme: "!", Pos: pos}
		case '<':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenRelOp, Lexeme: "<=", Pos: pos}
			}
			l.readChar()
			return Token{Type: TokenRelOp, Lexeme: "<", Pos: pos}
		case '>':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenRelOp, Lexeme: ">=", Pos: pos}
			}
			l.readChar()
			return Token{Type: TokenRelOp, Lexeme: ">", Pos: pos}
		case '+':
			l.readChar()
			return Token{Type: TokenAddOp, Lexeme: "+", Pos: pos}
		case '-':
			l.readChar()
			return Token{Type: TokenAddOp, Lexeme: "-", Pos: pos}
		case '*':
			l.readChar()
			return Token{Type: TokenMulOp, Lexeme: "*", Pos: pos}
		case '/':
			l.readChar()
			return Token{Type: TokenMulOp, Lexeme: "/", Pos: pos}
		case '%':
			l.readChar()
			return Token{Type: TokenMulOp, Lexeme: "%", Pos: pos}
		case '|':
			if l.peekChar() == '|' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenAddOp, Lexeme: "||", Pos: pos}
			}
			l.bag.Error(diag.KindLexical, pos, "illegal character '|'")
			l.readChar()
			continue
		case '&':
			if l.peekChar() == '&' {
				l.readChar()
				l.readChar()
				return Token{Type: TokenMulOp, Lexeme: "&&", Pos: pos}
			}
			l.bag.Error(diag.KindLexical, pos, "illegal character '&'")
			l.readChar()
			continue
		case '\'':
			return l.scanCharLiteral(pos)
		case '"':
			return l.scanStringLiteral(pos)
		default:
			if isLetter(l.ch) {
				return l.scanIdentifier(pos)
			}
			if isDigit(l.ch) {
				return l.scanNumber(pos)
			}
			l.skipIllegalRun(pos)
			continue
		}
	}
}

// Tokenize scans the remaining input and returns every token including
// the final EOF token. Used by the lexer-only debug dump and by tests.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// scanIdentifier reads a letter-led run of letters, digits, and
// underscores and classifies it as a keyword or identifier
func (l *Lexer) scanIdentifier(pos ast.Position) Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	text := l.input[start:l.position]
	if tt, ok := keywords[text]; ok {
		return Token{Type: tt, Lexeme: text, Pos: pos}
	}
	return Token{Type: TokenIdentifier, Lexeme: text, Pos: pos}
}

// scanNumber reads a maximal run of decimal digits. Leading zeros are
// allowed and do not change the base. A value outside the 32-bit
// signed range is a lexical error; the token then carries value 0.
func (l *Lexer) scanNumber(pos ast.Position) Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	raw := l.input[start:l.position]
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		l.bag.Error(diag.KindLexical, pos, "integer literal %s overflows the int type", raw)
		value = 0
	}
	return Token{Type: TokenNumber, Lexeme: raw, Value: int32(value), Pos: pos}
}

// scanCharLiteral reads a character literal. The literal holds at most
// one character; the empty literal '' is allowed and decodes to value
// zero. A line terminator or end of input before the closing quote,
// and a second character before it, are lexical errors with
// best-effort recovery so parsing can continue.
func (l *Lexer) scanCharLiteral(pos ast.Position) Token {
	l.readChar() // opening quote

	if l.ch == '\'' {
		l.readChar()
		return Token{Type: TokenCharLit, Lexeme: "", Pos: pos}
	}
	if l.ch == '\n' || l.ch == 0 {
		l.bag.Error(diag.KindLexical, pos, "unterminated character literal")
		return Token{Type: TokenCharLit, Lexeme: "", Pos: pos}
	}

	value := l.ch
	l.readChar()
	if l.ch == '\'' {
		l.readChar()
		return Token{Type: TokenCharLit, Lexeme: string(value), Pos: pos}
	}

	// Scan ahead to the closing quote on this line, if any
	for l.ch != '\'' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '\'' {
		l.readChar()
		l.bag.Error(diag.KindLexical, pos, "character literal holds more than one character")
	} else {
		l.bag.Error(diag.KindLexical, pos, "unterminated character literal")
	}
	return Token{Type: TokenCharLit, Lexeme: string(value), Pos: pos}
}

// scanStringLiteral reads a double-quoted string literal. The literal
// must not span a line terminator; on a newline or end of input before
// the closing quote a lexical error is reported and the partial value
// is kept on the recovery token.
func (l *Lexer) scanStringLiteral(pos ast.Position) Token {
	l.readChar() // opening quote
	start := l.position
	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	value := l.input[start:l.position]
	if l.ch == '"' {
		l.readChar()
	} else {
		l.bag.Error(diag.KindLexical, pos, "unterminated string literal")
	}
	return Token{Type: TokenStringLit, Lexeme: value, Pos: pos}
}

// skipIllegalRun consumes a maximal run of characters that cannot
// begin any token and reports one diagnostic for the whole run, so a
// cluster of bad input does not flood the diagnostics.
func (l *Lexer) skipIllegalRun(pos ast.Position) {
	start := l.position
	for l.ch != 0 && !l.canStartToken(l.ch) && !isWhitespace(l.ch) {
		l.readChar()
	}
	run := l.input[start:l.position]
	if len(run) == 1 {
		l.bag.Error(diag.KindLexical, pos, "illegal character %q", run)
	} else {
		l.bag.Error(diag.KindLexical, pos, "illegal characters %q", run)
	}
}

// canStartToken reports whether the character can begin a token.
// A lone '|' or '&' is an illegal character, but both can start the
// '||' and '&&' operators, so they end an illegal run.
func (l *Lexer) canStartToken(ch byte) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	return strings.IndexByte("(){}[],;:=!<>+-*/%|&'\"", ch) >= 0
}

// skipComment consumes a line comment or a nested block comment. An
// unterminated block comment is a lexical error reported at the
// comment opener.
func (l *Lexer) skipComment() {
	pos := l.pos()
	l.readChar() // '/'

	if l.ch == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		return
	}

	// Block comments nest
	l.readChar() // '*'
	depth := 1
	for depth > 0 {
		switch {
		case l.ch == 0:
			l.bag.Error(diag.KindLexical, pos, "unterminated comment")
			return
		case l.ch == '/' && l.peekChar() == '*':
			depth++
			l.readChar()
			l.readChar()
		case l.ch == '*' && l.peekChar() == '/':
			depth--
			l.readChar()
			l.readChar()
		default:
			l.readChar()
		}
	}
}

// skipWhitespace skips spaces, tabs, and line terminators
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readChar advances to the next character and updates line and column
// tracking
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// pos returns the position of the current character
func (l *Lexer) pos() ast.Position {
	return ast.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
