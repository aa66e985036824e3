// File: parser.go
// Title: ToyC Predictive Recursive-Descent Parser
// Description: Implements one procedure per grammar nonterminal. Each
//              procedure consults the grammar table with the current
//              lookahead token to choose a production, consumes tokens,
//              and builds AST nodes bottom-up. Syntax errors are
//              reported through the diagnostics bag followed by
//              panic-mode recovery to a statement boundary.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-14
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-14 v0.1.0: Initial parser implementation
// - 2026-08-24 v0.1.1: Track the last consumed token and fill node end
//                      positions

package parser

import (
	toycerror "github.com/msto63/toyc/foundation/core/error"
	toyclog "github.com/msto63/toyc/foundation/core/log"
	"github.com/msto63/toyc/internal/toyc/ast"
	"github.com/msto63/toyc/internal/toyc/diag"
)

// DefaultMaxErrors is the syntax error count at which a file's parse
// gives up
const DefaultMaxErrors = 25

// Options configures parser behavior
type Options struct {
	Logger    *toyclog.Logger // Logger for phase events, default logger when nil
	MaxErrors int             // Syntax error cap per file, DefaultMaxErrors when 0
	Trace     bool            // Record a TraceEvent per entered nonterminal
}

// Result is the outcome of parsing one source file
type Result struct {
	Program *ast.Program // Parsed tree, partial when errors occurred
	Bag     *diag.Bag    // Diagnostics in detection order
	Trace   []TraceEvent // Trace events in parse order, nil unless enabled
}

// Parser parses ToyC source files. A parser may be reused for several
// files in sequence but is not safe for concurrent use; parallel
// compilations each create their own parser.
type Parser struct {
	opts    Options
	logger  *toyclog.Logger
	grammar *Grammar

	lexer  *Lexer
	bag    *diag.Bag
	cur    Token
	prev   Token // most recently consumed token, source of node end positions
	peeked *Token

	trace      []TraceEvent
	depth      int
	syntaxErrs int
	fatal      bool

	// stmtSync is the panic-mode synchronizing set: tokens that can
	// begin a statement, plus ';', '}', the type keywords, and EOF
	stmtSync tokenSet
	// declSync is the top-level synchronizing set: definition starters
	// and EOF
	declSync tokenSet
}

// New creates a parser with the given options. The process-wide
// grammar table is built and validated on first use; a defective
// production set surfaces here, never at parse time.
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = toyclog.GetDefault()
	}
	if opts.MaxErrors == 0 {
		opts.MaxErrors = DefaultMaxErrors
	}
	if opts.MaxErrors < 0 {
		return nil, toycerror.New("max errors must not be negative").
			WithCode(toycerror.CodeOptionInvalid).
			WithOperation("parser.New")
	}

	g, err := LoadGrammar()
	if err != nil {
		return nil, err
	}

	stmtSync := g.First(NTStatement)
	stmtSync.merge(bit(TokenSemicolon))
	stmtSync.merge(bit(TokenRCurly))
	stmtSync.merge(bit(TokenInt))
	stmtSync.merge(bit(TokenChar))
	stmtSync.merge(bit(TokenEOF))

	var declSync tokenSet
	declSync.merge(bit(TokenInt))
	declSync.merge(bit(TokenChar))
	declSync.merge(bit(TokenEOF))

	return &Parser{
		opts:     opts,
		logger:   opts.Logger.WithField("component", "toyc-parser"),
		grammar:  g,
		stmtSync: stmtSync,
		declSync: declSync,
	}, nil
}

// ParseFile parses one source file and returns its AST, diagnostics,
// and trace. The parser state is reset, so each file is an independent
// compilation unit.
func (p *Parser) ParseFile(filename, src string) *Result {
	p.bag = diag.NewBag(filename, []byte(src))
	p.lexer = NewLexer(filename, src, p.bag)
	p.cur = Token{}
	p.prev = Token{}
	p.peeked = nil
	p.trace = nil
	p.depth = 0
	p.syntaxErrs = 0
	p.fatal = false

	timer := p.logger.StartTimer("parse").WithField("file", filename)
	p.logger.Debug("parsing file", toyclog.Fields{"file": filename, "bytes": len(src)})

	p.advance()
	prog := p.parseProgram()

	timer.Stop()
	p.logger.Debug("parse finished", toyclog.Fields{
		"file":        filename,
		"definitions": len(prog.Decls),
		"diagnostics": p.bag.Count(),
	})

	return &Result{Program: prog, Bag: p.bag, Trace: p.trace}
}

// Token plumbing

// advance consumes the current token. The one-slot peek buffer is
// drained before the lexer is asked for more input.
func (p *Parser) advance() {
	p.prev = p.cur
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
		return
	}
	p.cur = p.lexer.NextToken()
}

// peek returns the token after the current one without consuming it.
// Used only at the two documented two-token lookahead points.
func (p *Parser) peek() Token {
	if p.peeked == nil {
		t := p.lexer.NextToken()
		p.peeked = &t
	}
	return *p.peeked
}

// enter records a trace event for a chosen production and tracks the
// nesting depth. The returned function must be called on exit.
func (p *Parser) enter(nt NonTerminal, alt int) func() {
	if p.opts.Trace {
		p.trace = append(p.trace, TraceEvent{
			Depth:       p.depth,
			NonTerminal: nt,
			Lookahead:   p.cur,
			Alternative: alt,
			Production:  p.grammar.ProductionString(nt, alt),
		})
	}
	p.depth++
	return func() { p.depth-- }
}

// predict chooses an alternative of nt from the current lookahead
func (p *Parser) predict(nt NonTerminal) (int, bool) {
	return p.grammar.Predict(nt, p.cur.Type)
}

// Error handling and recovery

// describeToken renders a token for an error message
func describeToken(t Token) string {
	if t.Type == TokenEOF {
		return "end of file"
	}
	if t.Type == TokenStringLit {
		return "string literal"
	}
	return "'" + t.Lexeme + "'"
}

// syntaxError reports a syntax diagnostic at the current token. Once
// the error cap is reached the parse turns fatal and stops consuming
// input.
func (p *Parser) syntaxError(format string, args ...interface{}) {
	if p.fatal {
		return
	}
	p.bag.Error(diag.KindSyntax, p.cur.Pos, format, args...)
	p.syntaxErrs++
	if p.syntaxErrs >= p.opts.MaxErrors {
		p.bag.Error(diag.KindStructural, p.cur.Pos, "too many syntax errors; giving up on this file")
		p.fatal = true
	}
}

// structuralEOF ends the file's parse: input ran out while required
// tokens were still expected and no synchronization point is left
func (p *Parser) structuralEOF() {
	if p.fatal {
		return
	}
	p.bag.Error(diag.KindStructural, p.cur.Pos, "no input left to recover to; giving up on this file")
	p.fatal = true
}

// syncStatement performs panic-mode recovery: tokens are discarded
// until one that can begin a statement, a ';', a '}', a type keyword,
// or end of file. Reaching end of file this way is structural.
func (p *Parser) syncStatement() {
	skippedToEOF := false
	for !p.stmtSync.has(p.cur.Type) {
		p.advance()
		skippedToEOF = true
	}
	if p.cur.Type == TokenEOF && skippedToEOF {
		p.structuralEOF()
	}
}

// syncTopLevel discards tokens until a definition can start again
func (p *Parser) syncTopLevel() {
	for !p.declSync.has(p.cur.Type) {
		p.advance()
	}
}

// expect consumes the current token when it has the wanted type.
// Otherwise a syntax error naming the expectation is reported and the
// token is left in place for recovery.
func (p *Parser) expect(tt TokenType) (Token, bool) {
	if p.cur.Type == tt {
		t := p.cur
		p.advance()
		return t, true
	}
	p.syntaxError("expected %s, found %s", tt.Describe(), describeToken(p.cur))
	if p.cur.Type == TokenEOF {
		p.structuralEOF()
	}
	return p.cur, false
}

// expectSemi consumes the statement-terminating ';'. When it is
// missing, one diagnostic is reported and recovery resynchronizes to
// the nearest statement boundary, consuming a late ';' when that is
// what recovery found.
func (p *Parser) expectSemi() {
	if p.cur.Type == TokenSemicolon {
		p.advance()
		return
	}
	p.syntaxError("expected ';', found %s", describeToken(p.cur))
	if p.cur.Type == TokenEOF {
		p.structuralEOF()
		return
	}
	p.syncStatement()
	if p.cur.Type == TokenSemicolon {
		p.advance()
	}
}

// ident consumes the current token, which must be an identifier, and
// builds its AST node
func (p *Parser) ident() (*ast.Ident, bool) {
	tok, ok := p.expect(TokenIdentifier)
	if !ok {
		return nil, false
	}
	return &ast.Ident{Name: tok.Lexeme, Pos: tok.Pos, EndPos: tok.Pos}, true
}

// Nonterminal procedures

// parseProgram parses the whole compilation unit: definitions until
// end of file
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{Pos: p.cur.Pos}
	for !p.fatal {
		alt, ok := p.predict(NTProgram)
		if !ok {
			p.syntaxError("expected definition, found %s", describeToken(p.cur))
			p.syncTopLevel()
			continue
		}
		leave := p.enter(NTProgram, alt)
		if alt == 1 { // end of file
			leave()
			break
		}
		if d := p.parseDefinition(); d != nil {
			prog.Decls = append(prog.Decls, d)
		}
		leave()
	}
	prog.EndPos = p.prev.Pos
	if prog.EndPos == (ast.Position{}) { // empty file, nothing consumed
		prog.EndPos = prog.Pos
	}
	return prog
}

// parseDefinition parses a top-level definition. Whether the name
// introduces a variable or a function is decided on the token after
// the identifier, through Definition'; this is one of the two
// documented two-token lookahead points.
func (p *Parser) parseDefinition() ast.Decl {
	leave := p.enter(NTDefinition, 0)
	defer leave()

	pos := p.cur.Pos
	typ, ok := p.parseType()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	name, ok := p.ident()
	if !ok {
		p.syncTopLevel()
		return nil
	}

	alt, ok := p.predict(NTDefinitionSuffix)
	if !ok {
		p.syntaxError("expected ';' or '(' after %s, found %s", name.Name, describeToken(p.cur))
		p.syncTopLevel()
		return nil
	}
	leaveSuffix := p.enter(NTDefinitionSuffix, alt)
	defer leaveSuffix()

	if alt == 0 {
		p.advance() // ';'
		return &ast.VarDecl{Type: typ, Name: name, Pos: pos, EndPos: p.prev.Pos}
	}

	params := p.parseFunctionHeader()
	body := p.parseFunctionBody()
	return &ast.FuncDecl{Type: typ, Name: name, Params: params, Body: body, Pos: pos, EndPos: p.prev.Pos}
}

// parseType parses a type keyword
func (p *Parser) parseType() (ast.TypeKind, bool) {
	alt, ok := p.predict(NTType)
	if !ok {
		p.syntaxError("expected type, found %s", describeToken(p.cur))
		return ast.TypeInt, false
	}
	p.enter(NTType, alt)()
	p.advance()
	if alt == 1 {
		return ast.TypeChar, true
	}
	return ast.TypeInt, true
}

// parseFunctionHeader parses the parenthesized formal parameter list
func (p *Parser) parseFunctionHeader() []*ast.Param {
	leave := p.enter(NTFunctionHeader, 0)
	defer leave()

	p.expect(TokenLParen)
	params := p.parseFormalParamList()
	p.expect(TokenRParen)
	return params
}

// parseFormalParamList parses a possibly empty comma-separated list of
// typed parameter names. List continuation is decided by predicting
// ',' against the closing ')'.
func (p *Parser) parseFormalParamList() []*ast.Param {
	alt, ok := p.predict(NTFormalParamList)
	if !ok {
		p.syntaxError("expected parameter or ')', found %s", describeToken(p.cur))
		return nil
	}
	leave := p.enter(NTFormalParamList, alt)
	defer leave()
	if alt == 1 { // empty list
		return nil
	}

	var params []*ast.Param
	if param, ok := p.parseParam(); ok {
		params = append(params, param)
	}
	for !p.fatal && p.cur.Type == TokenComma {
		leaveTail := p.enter(NTFormalParamListTail, 0)
		p.advance() // ','
		if param, ok := p.parseParam(); ok {
			params = append(params, param)
		}
		leaveTail()
	}
	p.enter(NTFormalParamListTail, 1)()
	return params
}

// parseParam parses one typed parameter name
func (p *Parser) parseParam() (*ast.Param, bool) {
	pos := p.cur.Pos
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	return &ast.Param{Type: typ, Name: name, Pos: pos, EndPos: name.EndPos}, true
}

// parseFunctionBody parses the function's compound statement
func (p *Parser) parseFunctionBody() *ast.BlockStmt {
	leave := p.enter(NTFunctionBody, 0)
	defer leave()
	return p.parseCompound()
}

// parseCompound parses a braced block: variable definitions first,
// then statements. A definition appearing after the first statement is
// a syntax error; the declaration is still consumed so recovery stays
// local.
func (p *Parser) parseCompound() *ast.BlockStmt {
	leave := p.enter(NTCompoundStatement, 0)
	defer leave()

	block := &ast.BlockStmt{Pos: p.cur.Pos}
	block.EndPos = block.Pos
	if _, ok := p.expect(TokenLCurly); !ok {
		return block
	}

	// Leading variable definitions (CompoundStatement')
	for !p.fatal {
		alt, ok := p.predict(NTCompoundDecls)
		if !ok {
			break
		}
		if alt == 1 {
			p.enter(NTCompoundDecls, 1)()
			break
		}
		leaveDecl := p.enter(NTCompoundDecls, 0)
		if d := p.parseBlockVarDecl(); d != nil {
			block.Decls = append(block.Decls, d)
		}
		leaveDecl()
	}

	// Statements until the closing brace (CompoundStatement'')
	for !p.fatal {
		alt, ok := p.predict(NTCompoundStmts)
		if !ok {
			switch p.cur.Type {
			case TokenInt, TokenChar:
				p.syntaxError("declarations must precede the statements of a block")
				if d := p.parseBlockVarDecl(); d != nil {
					block.Decls = append(block.Decls, d)
				}
			case TokenEOF:
				p.syntaxError("expected '}', found end of file")
				p.structuralEOF()
				block.EndPos = p.prev.Pos
				return block
			default:
				p.syntaxError("expected statement or '}', found %s", describeToken(p.cur))
				p.syncStatement()
			}
			continue
		}
		if alt == 1 { // '}'
			p.enter(NTCompoundStmts, 1)()
			break
		}
		leaveStmt := p.enter(NTCompoundStmts, 0)
		if s := p.parseStatement(); s != nil {
			block.Stmts = append(block.Stmts, s)
		}
		leaveStmt()
	}

	p.expect(TokenRCurly)
	block.EndPos = p.prev.Pos
	return block
}

// parseBlockVarDecl parses one block-local variable definition
func (p *Parser) parseBlockVarDecl() *ast.VarDecl {
	pos := p.cur.Pos
	typ, ok := p.parseType()
	if !ok {
		p.syncStatement()
		return nil
	}
	name, ok := p.ident()
	if !ok {
		p.syncStatement()
		return nil
	}
	p.expectSemi()
	return &ast.VarDecl{Type: typ, Name: name, Pos: pos, EndPos: p.prev.Pos}
}

// parseStatement dispatches on the lookahead token to the statement
// kind it predicts. An unpredicted token yields one syntax error, a
// resynchronization, and a placeholder node so the tree shape stays
// valid.
func (p *Parser) parseStatement() ast.Stmt {
	alt, ok := p.predict(NTStatement)
	if !ok {
		pos := p.cur.Pos
		p.syntaxError("expected statement, found %s", describeToken(p.cur))
		p.syncStatement()
		return &ast.BadStmt{Pos: pos, EndPos: pos}
	}
	leave := p.enter(NTStatement, alt)
	defer leave()

	switch alt {
	case 0:
		return p.parseExprStatement()
	case 1:
		return p.parseBreak()
	case 2:
		return p.parseCompound()
	case 3:
		return p.parseIf()
	case 4:
		return p.parseNull()
	case 5:
		return p.parseReturn()
	case 6:
		return p.parseWhile()
	case 7:
		return p.parseRead()
	case 8:
		return p.parseWrite()
	default:
		return p.parseNewline()
	}
}

func (p *Parser) parseExprStatement() ast.Stmt {
	leave := p.enter(NTExpressionStatement, 0)
	defer leave()
	pos := p.cur.Pos
	x := p.parseExpression()
	p.expectSemi()
	return &ast.ExprStmt{X: x, Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseBreak() ast.Stmt {
	leave := p.enter(NTBreakStatement, 0)
	defer leave()
	pos := p.cur.Pos
	p.advance() // 'break'
	p.expectSemi()
	return &ast.BreakStmt{Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseNull() ast.Stmt {
	leave := p.enter(NTNullStatement, 0)
	defer leave()
	pos := p.cur.Pos
	p.advance() // ';'
	return &ast.EmptyStmt{Pos: pos, EndPos: pos}
}

// parseIf parses an if statement with its optional else branch. The
// grammar table already binds a dangling else to the nearest if.
func (p *Parser) parseIf() ast.Stmt {
	leave := p.enter(NTIfStatement, 0)
	defer leave()

	pos := p.cur.Pos
	p.advance() // 'if'
	p.expect(TokenLParen)
	cond := p.parseExpression()
	p.expect(TokenRParen)
	then := p.parseStatement()

	var els ast.Stmt
	if alt, ok := p.predict(NTElseClause); ok {
		leaveElse := p.enter(NTElseClause, alt)
		if alt == 0 {
			p.advance() // 'else'
			els = p.parseStatement()
		}
		leaveElse()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseWhile() ast.Stmt {
	leave := p.enter(NTWhileStatement, 0)
	defer leave()

	pos := p.cur.Pos
	p.advance() // 'while'
	p.expect(TokenLParen)
	cond := p.parseExpression()
	p.expect(TokenRParen)
	body := p.parseStatement()
	return &ast.WhileStmt{Cond: cond, Body: body, Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseReturn() ast.Stmt {
	leave := p.enter(NTReturnStatement, 0)
	defer leave()

	pos := p.cur.Pos
	p.advance() // 'return'

	alt, ok := p.predict(NTReturnValue)
	if !ok {
		p.syntaxError("expected expression or ';', found %s", describeToken(p.cur))
		p.syncStatement()
		if p.cur.Type == TokenSemicolon {
			p.advance()
		}
		return &ast.ReturnStmt{Pos: pos, EndPos: p.prev.Pos}
	}
	leaveValue := p.enter(NTReturnValue, alt)
	defer leaveValue()

	if alt == 1 {
		p.advance() // ';'
		return &ast.ReturnStmt{Pos: pos, EndPos: p.prev.Pos}
	}
	result := p.parseExpression()
	p.expectSemi()
	return &ast.ReturnStmt{Result: result, Pos: pos, EndPos: p.prev.Pos}
}

// parseRead parses a read statement with its one-or-more identifier
// list
func (p *Parser) parseRead() ast.Stmt {
	leave := p.enter(NTReadStatement, 0)
	defer leave()

	pos := p.cur.Pos
	p.advance() // 'read'
	p.expect(TokenLParen)

	var names []*ast.Ident
	if name, ok := p.ident(); ok {
		names = append(names, name)
	}
	for !p.fatal && p.cur.Type == TokenComma {
		leaveTail := p.enter(NTReadTail, 0)
		p.advance() // ','
		if name, ok := p.ident(); ok {
			names = append(names, name)
		}
		leaveTail()
	}
	p.enter(NTReadTail, 1)()

	p.expect(TokenRParen)
	p.expectSemi()
	return &ast.ReadStmt{Names: names, Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseWrite() ast.Stmt {
	leave := p.enter(NTWriteStatement, 0)
	defer leave()

	pos := p.cur.Pos
	p.advance() // 'write'
	p.expect(TokenLParen)
	args := p.parseActualParameters()
	p.expect(TokenRParen)
	p.expectSemi()
	return &ast.WriteStmt{Args: args, Pos: pos, EndPos: p.prev.Pos}
}

func (p *Parser) parseNewline() ast.Stmt {
	leave := p.enter(NTNewLineStatement, 0)
	defer leave()
	pos := p.cur.Pos
	p.advance() // 'newline'
	p.expectSemi()
	return &ast.NewlineStmt{Pos: pos, EndPos: p.prev.Pos}
}

// parseExpression parses an assignment or a relational expression.
// An identifier followed immediately by '=' selects the assignment
// alternative; this is the second documented two-token lookahead
// point. Assignment is right-associative and binds looser than
// comparison.
func (p *Parser) parseExpression() ast.Expr {
	if p.cur.Type == TokenIdentifier && p.peek().Type == TokenAssign {
		leave := p.enter(NTExpression, 0)
		defer leave()

		target := &ast.Ident{Name: p.cur.Lexeme, Pos: p.cur.Pos, EndPos: p.cur.Pos}
		p.advance() // identifier
		p.advance() // '='
		value := p.parseExpression()
		return &ast.AssignExpr{Target: target, Value: value, Pos: target.Pos, EndPos: value.End()}
	}

	alt, ok := p.predict(NTExpression)
	if !ok {
		pos := p.cur.Pos
		p.syntaxError("expected expression, found %s", describeToken(p.cur))
		p.syncStatement()
		return &ast.BadExpr{Pos: pos, EndPos: pos}
	}
	if alt == 0 {
		// An identifier without a following '=' starts a comparison,
		// not an assignment
		alt = 1
	}
	leave := p.enter(NTExpression, alt)
	defer leave()
	return p.parseRelopExpression()
}

// parseRelopExpression parses a simple expression optionally followed
// by exactly one relational comparison; relational operators do not
// chain
func (p *Parser) parseRelopExpression() ast.Expr {
	leave := p.enter(NTRelopExpression, 0)
	defer leave()

	left := p.parseSimpleExpression()
	if p.cur.Type != TokenRelOp {
		p.enter(NTRelopTail, 1)()
		return left
	}

	leaveTail := p.enter(NTRelopTail, 0)
	op := relOpFor(p.cur.Lexeme)
	p.advance()
	right := p.parseSimpleExpression()
	leaveTail()
	left = &ast.BinaryExpr{X: left, Op: op, Y: right, Pos: left.Position(), EndPos: right.End()}

	if p.cur.Type == TokenRelOp {
		p.syntaxError("relational operators do not chain; unexpected '%s'", p.cur.Lexeme)
		// Consume the extra comparison so one mistake yields one error
		p.advance()
		p.parseSimpleExpression()
	}
	return left
}

// parseSimpleExpression parses a left-associative chain of terms
// joined by additive operators
func (p *Parser) parseSimpleExpression() ast.Expr {
	leave := p.enter(NTSimpleExpression, 0)
	defer leave()

	left := p.parseTerm()
	for !p.fatal && p.cur.Type == TokenAddOp {
		leaveTail := p.enter(NTSimpleTail, 0)
		op := addOpFor(p.cur.Lexeme)
		p.advance()
		right := p.parseTerm()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Pos: left.Position(), EndPos: right.End()}
		leaveTail()
	}
	p.enter(NTSimpleTail, 1)()
	return left
}

// parseTerm parses a left-associative chain of primaries joined by
// multiplicative operators
func (p *Parser) parseTerm() ast.Expr {
	leave := p.enter(NTTerm, 0)
	defer leave()

	left := p.parsePrimary()
	for !p.fatal && p.cur.Type == TokenMulOp {
		leaveTail := p.enter(NTTermTail, 0)
		op := mulOpFor(p.cur.Lexeme)
		p.advance()
		right := p.parsePrimary()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Pos: left.Position(), EndPos: right.End()}
		leaveTail()
	}
	p.enter(NTTermTail, 1)()
	return left
}

// parsePrimary parses an identifier or call, a literal, a
// parenthesized expression, or a unary operator applied to a primary
func (p *Parser) parsePrimary() ast.Expr {
	alt, ok := p.predict(NTPrimary)
	if !ok {
		pos := p.cur.Pos
		p.syntaxError("expected expression, found %s", describeToken(p.cur))
		p.syncStatement()
		return &ast.BadExpr{Pos: pos, EndPos: pos}
	}
	leave := p.enter(NTPrimary, alt)
	defer leave()

	pos := p.cur.Pos
	switch alt {
	case 0: // identifier, possibly a call
		name := &ast.Ident{Name: p.cur.Lexeme, Pos: pos, EndPos: pos}
		p.advance()
		if p.cur.Type != TokenLParen {
			p.enter(NTPrimarySuffix, 1)()
			return name
		}
		leaveSuffix := p.enter(NTPrimarySuffix, 0)
		defer leaveSuffix()
		p.advance() // '('
		args := p.parseActualParameters()
		p.expect(TokenRParen)
		return &ast.CallExpr{Fun: name, Args: args, Pos: pos, EndPos: p.prev.Pos}

	case 1:
		lit := &ast.IntLit{Value: p.cur.Value, Raw: p.cur.Lexeme, Pos: pos, EndPos: pos}
		p.advance()
		return lit

	case 2:
		var value byte
		if p.cur.Lexeme != "" {
			value = p.cur.Lexeme[0]
		}
		lit := &ast.CharLit{Value: value, Raw: p.cur.Lexeme, Pos: pos, EndPos: pos}
		p.advance()
		return lit

	case 3:
		lit := &ast.StringLit{Value: p.cur.Lexeme, Raw: p.cur.Lexeme, Pos: pos, EndPos: pos}
		p.advance()
		return lit

	case 4: // parenthesized expression
		p.advance() // '('
		x := p.parseExpression()
		p.expect(TokenRParen)
		return x

	case 5: // unary '+' or '-'; '||' shares the token class but is not unary
		if p.cur.Lexeme == "||" {
			p.syntaxError("expected expression, found '||'")
			p.advance()
			return &ast.BadExpr{Pos: pos, EndPos: pos}
		}
		op := addOpFor(p.cur.Lexeme)
		p.advance()
		x := p.parsePrimary()
		return &ast.UnaryExpr{Op: op, X: x, Pos: pos, EndPos: x.End()}

	default: // logical negation
		p.advance() // '!'
		x := p.parsePrimary()
		return &ast.UnaryExpr{Op: ast.OpNot, X: x, Pos: pos, EndPos: x.End()}
	}
}

// parseActualParameters parses a possibly empty comma-separated
// argument list; continuation is decided by predicting ',' against the
// closing ')'
func (p *Parser) parseActualParameters() []ast.Expr {
	alt, ok := p.predict(NTActualParameters)
	if !ok {
		p.syntaxError("expected expression or ')', found %s", describeToken(p.cur))
		p.syncStatement()
		return nil
	}
	leave := p.enter(NTActualParameters, alt)
	defer leave()
	if alt == 1 { // empty list
		return nil
	}

	args := []ast.Expr{p.parseExpression()}
	for !p.fatal && p.cur.Type == TokenComma {
		leaveTail := p.enter(NTActualParamsTail, 0)
		p.advance() // ','
		args = append(args, p.parseExpression())
		leaveTail()
	}
	p.enter(NTActualParamsTail, 1)()
	return args
}

// Operator class decoding

func relOpFor(lexeme string) ast.Op {
	switch lexeme {
	case "==":
		return ast.OpEq
	case "!=":
		return ast.OpNeq
	case "<":
		return ast.OpLt
	case "<=":
		return ast.OpLtEq
	case ">":
		return ast.OpGt
	default:
		return ast.OpGtEq
	}
}

func addOpFor(lexeme string) ast.Op {
	switch lexeme {
	case "+":
		return ast.OpAdd
	case "-":
		return ast.OpSub
	default:
		return ast.OpBoolOr
	}
}

func mulOpFor(lexeme string) ast.Op {
	switch lexeme {
	case "*":
		return ast.OpMul
	case "/":
		return ast.OpDiv
	case "%":
		return ast.OpMod
	default:
		return ast.OpBoolAnd
	}
}
