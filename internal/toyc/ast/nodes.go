// File: nodes.go
// Title: ToyC AST Node Definitions
// Description: Defines all AST node types for representing ToyC programs
//              including declarations, statements, and expressions.
//              Provides string representations and validation methods.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-12
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-12 v0.1.0: Initial AST node definitions
// - 2026-08-24 v0.1.1: Added end positions so nodes carry full token spans

package ast

import (
	"fmt"

	"github.com/msto63/toyc/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical tree representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node's first token
	Position() Position

	// End returns the source position of the node's last token, so a
	// node spans Position() through End() inclusive
	End() Position

	// Validate checks the node's local structural invariants.
	// Child nodes are not validated; use ValidateAST for a deep check.
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Decl is implemented by all declaration nodes
type Decl interface {
	Node
	declNode() // marker method
}

// Stmt is implemented by all statement nodes
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Expr is implemented by all expression nodes
type Expr interface {
	Node
	exprNode() // marker method
}

// TypeKind represents a ToyC type
type TypeKind int

const (
	// TypeInt is the integer type
	TypeInt TypeKind = iota

	// TypeChar is the character type
	TypeChar
)

// String returns the source form of the type
func (t TypeKind) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeChar:
		return "char"
	default:
		return "unknown"
	}
}

// Op represents a ToyC operator
type Op int

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpMod           // %
	OpBoolOr        // ||
	OpBoolAnd       // &&
	OpLt            // <
	OpLtEq          // <=
	OpGt            // >
	OpGtEq          // >=
	OpEq            // ==
	OpNeq           // !=
	OpNot           // ! (unary only)
)

// String returns the source form of the operator
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpBoolOr:
		return "||"
	case OpBoolAnd:
		return "&&"
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpNot:
		return "!"
	default:
		return "unknown"
	}
}

// Tag returns the tree-printer tag of the operator
func (op Op) Tag() string {
	switch op {
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpMod:
		return "MOD"
	case OpBoolOr:
		return "BOOL_OR"
	case OpBoolAnd:
		return "BOOL_AND"
	case OpLt:
		return "LT"
	case OpLtEq:
		return "LT_EQ"
	case OpGt:
		return "GT"
	case OpGtEq:
		return "GT_EQ"
	case OpEq:
		return "EQ"
	case OpNeq:
		return "NEQ"
	case OpNot:
		return "NOT"
	default:
		return "UNKNOWN"
	}
}

// IsBinary reports whether the operator may appear in a binary expression
func (op Op) IsBinary() bool {
	return op != OpNot
}

// IsUnary reports whether the operator may appear in a unary expression
func (op Op) IsUnary() bool {
	return op == OpAdd || op == OpSub || op == OpNot
}

// Program is the root of the AST, holding all top-level definitions
type Program struct {
	Decls  []Decl   // Top-level variable and function definitions
	Pos    Position // Source position (start of file)
	EndPos Position // Source position of the last token
}

// VarDecl represents a variable definition at top level or in a block
type VarDecl struct {
	Type   TypeKind // Declared type
	Name   *Ident   // Variable name
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// FuncDecl represents a function definition
type FuncDecl struct {
	Type   TypeKind   // Return type
	Name   *Ident     // Function name
	Params []*Param   // Formal parameters in declaration order
	Body   *BlockStmt // Function body
	Pos    Position   // Source position
	EndPos Position   // Source position of the last token
}

// Param represents a single formal parameter
type Param struct {
	Type   TypeKind // Parameter type
	Name   *Ident   // Parameter name
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// Statement nodes

// BlockStmt represents a braced block with leading variable
// definitions followed by statements
type BlockStmt struct {
	Decls  []*VarDecl // Variable definitions at the top of the block
	Stmts  []Stmt     // Statements in execution order
	Pos    Position   // Source position (opening brace)
	EndPos Position   // Source position of the last token
}

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	X      Expr     // Expression
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// IfStmt represents an if statement with an optional else branch
type IfStmt struct {
	Cond   Expr     // Condition expression
	Then   Stmt     // Statement executed when the condition holds
	Else   Stmt     // Optional else branch, nil if absent
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// WhileStmt represents a while loop
type WhileStmt struct {
	Cond   Expr     // Loop condition
	Body   Stmt     // Loop body
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// ReadStmt represents a read statement with one or more targets
type ReadStmt struct {
	Names  []*Ident // Identifiers read into, at least one
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// WriteStmt represents a write statement
type WriteStmt struct {
	Args   []Expr   // Expressions written, possibly empty
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// NewlineStmt represents a newline statement
type NewlineStmt struct {
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// ReturnStmt represents a return statement with an optional result
type ReturnStmt struct {
	Result Expr     // Returned expression, nil if absent
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// BreakStmt represents a break statement
type BreakStmt struct {
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// EmptyStmt represents a lone semicolon
type EmptyStmt struct {
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// BadStmt is a placeholder for a statement that could not be parsed
type BadStmt struct {
	Pos    Position // Source position of the first bad token
	EndPos Position // Source position of the last token
}

// Expression nodes

// AssignExpr represents an assignment to an identifier.
// Assignment is right-associative and its target is always a plain
// identifier.
type AssignExpr struct {
	Target *Ident   // Assignment target
	Value  Expr     // Assigned value
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X      Expr     // Left operand
	Op     Op       // Operator
	Y      Expr     // Right operand
	Pos    Position // Source position (first token of the left operand)
	EndPos Position // Source position of the last token
}

// UnaryExpr represents a unary expression (+x, -x, !x)
type UnaryExpr struct {
	Op     Op       // Operator, one of OpAdd, OpSub, OpNot
	X      Expr     // Operand
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// Ident represents an identifier reference
type Ident struct {
	Name   string   // Identifier name
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// IntLit represents an integer literal
type IntLit struct {
	Value  int32    // Decoded value
	Raw    string   // Raw lexeme as written in the source
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// CharLit represents a character literal
type CharLit struct {
	Value  byte     // Decoded character
	Raw    string   // Raw lexeme including quotes
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// StringLit represents a string literal
type StringLit struct {
	Value  string   // Decoded string contents
	Raw    string   // Raw lexeme including quotes
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// CallExpr represents a function call
type CallExpr struct {
	Fun    *Ident   // Called function name
	Args   []Expr   // Arguments in call order
	Pos    Position // Source position
	EndPos Position // Source position of the last token
}

// BadExpr is a placeholder for an expression that could not be parsed
type BadExpr struct {
	Pos    Position // Source position of the first bad token
	EndPos Position // Source position of the last token
}

// Marker methods

func (*VarDecl) declNode()  {}
func (*FuncDecl) declNode() {}

func (*BlockStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*IfStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()   {}
func (*ReadStmt) stmtNode()    {}
func (*WriteStmt) stmtNode()   {}
func (*NewlineStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()  {}
func (*BreakStmt) stmtNode()   {}
func (*EmptyStmt) stmtNode()   {}
func (*BadStmt) stmtNode()     {}

func (*AssignExpr) exprNode() {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*Ident) exprNode()      {}
func (*IntLit) exprNode()     {}
func (*CharLit) exprNode()    {}
func (*StringLit) exprNode()  {}
func (*CallExpr) exprNode()   {}
func (*BadExpr) exprNode()    {}

// Node interface implementation for Program

func (p *Program) String() string { return Print(p) }

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position { return p.Pos }

func (p *Program) End() Position { return p.EndPos }

func (p *Program) Validate() error {
	for i, d := range p.Decls {
		if d == nil {
			return fmt.Errorf("definition %d is nil", i)
		}
	}
	return nil
}

// Node interface implementation for VarDecl

func (d *VarDecl) String() string { return Print(d) }

func (d *VarDecl) Accept(visitor Visitor) interface{} {
	return visitor.VisitVarDecl(d)
}

func (d *VarDecl) Position() Position { return d.Pos }

func (d *VarDecl) End() Position { return d.EndPos }

func (d *VarDecl) Validate() error {
	if d.Name == nil || stringx.IsBlank(d.Name.Name) {
		return fmt.Errorf("variable name is required")
	}
	return nil
}

// Node interface implementation for FuncDecl

func (d *FuncDecl) String() string { return Print(d) }

func (d *FuncDecl) Accept(visitor Visitor) interface{} {
	return visitor.VisitFuncDecl(d)
}

func (d *FuncDecl) Position() Position { return d.Pos }

func (d *FuncDecl) End() Position { return d.EndPos }

func (d *FuncDecl) Validate() error {
	if d.Name == nil || stringx.IsBlank(d.Name.Name) {
		return fmt.Errorf("function name is required")
	}
	if d.Body == nil {
		return fmt.Errorf("function body is required")
	}
	for i, p := range d.Params {
		if p == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
	}
	return nil
}

// Node interface implementation for Param

func (p *Param) String() string { return Print(p) }

func (p *Param) Accept(visitor Visitor) interface{} {
	return visitor.VisitParam(p)
}

func (p *Param) Position() Position { return p.Pos }

func (p *Param) End() Position { return p.EndPos }

func (p *Param) Validate() error {
	if p.Name == nil || stringx.IsBlank(p.Name.Name) {
		return fmt.Errorf("parameter name is required")
	}
	return nil
}

// Node interface implementation for statement nodes

func (s *BlockStmt) String() string { return Print(s) }

func (s *BlockStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlockStmt(s)
}

func (s *BlockStmt) Position() Position { return s.Pos }

func (s *BlockStmt) End() Position { return s.EndPos }

func (s *BlockStmt) Validate() error {
	for i, d := range s.Decls {
		if d == nil {
			return fmt.Errorf("block definition %d is nil", i)
		}
	}
	for i, st := range s.Stmts {
		if st == nil {
			return fmt.Errorf("block statement %d is nil", i)
		}
	}
	return nil
}

func (s *ExprStmt) String() string { return Print(s) }

func (s *ExprStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitExprStmt(s)
}

func (s *ExprStmt) Position() Position { return s.Pos }

func (s *ExprStmt) End() Position { return s.EndPos }

func (s *ExprStmt) Validate() error {
	if s.X == nil {
		return fmt.Errorf("expression is required")
	}
	return nil
}

func (s *IfStmt) String() string { return Print(s) }

func (s *IfStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitIfStmt(s)
}

func (s *IfStmt) Position() Position { return s.Pos }

func (s *IfStmt) End() Position { return s.EndPos }

func (s *IfStmt) Validate() error {
	if s.Cond == nil {
		return fmt.Errorf("if condition is required")
	}
	if s.Then == nil {
		return fmt.Errorf("if body is required")
	}
	return nil
}

func (s *WhileStmt) String() string { return Print(s) }

func (s *WhileStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhileStmt(s)
}

func (s *WhileStmt) Position() Position { return s.Pos }

func (s *WhileStmt) End() Position { return s.EndPos }

func (s *WhileStmt) Validate() error {
	if s.Cond == nil {
		return fmt.Errorf("while condition is required")
	}
	if s.Body == nil {
		return fmt.Errorf("while body is required")
	}
	return nil
}

func (s *ReadStmt) String() string { return Print(s) }

func (s *ReadStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitReadStmt(s)
}

func (s *ReadStmt) Position() Position { return s.Pos }

func (s *ReadStmt) End() Position { return s.EndPos }

func (s *ReadStmt) Validate() error {
	if len(s.Names) == 0 {
		return fmt.Errorf("read requires at least one identifier")
	}
	for i, n := range s.Names {
		if n == nil {
			return fmt.Errorf("read target %d is nil", i)
		}
	}
	return nil
}

func (s *WriteStmt) String() string { return Print(s) }

func (s *WriteStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitWriteStmt(s)
}

func (s *WriteStmt) Position() Position { return s.Pos }

func (s *WriteStmt) End() Position { return s.EndPos }

func (s *WriteStmt) Validate() error {
	for i, a := range s.Args {
		if a == nil {
			return fmt.Errorf("write argument %d is nil", i)
		}
	}
	return nil
}

func (s *NewlineStmt) String() string { return Print(s) }

func (s *NewlineStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitNewlineStmt(s)
}

func (s *NewlineStmt) Position() Position { return s.Pos }

func (s *NewlineStmt) End() Position { return s.EndPos }

func (s *NewlineStmt) Validate() error { return nil }

func (s *ReturnStmt) String() string { return Print(s) }

func (s *ReturnStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturnStmt(s)
}

func (s *ReturnStmt) Position() Position { return s.Pos }

func (s *ReturnStmt) End() Position { return s.EndPos }

func (s *ReturnStmt) Validate() error { return nil }

func (s *BreakStmt) String() string { return Print(s) }

func (s *BreakStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitBreakStmt(s)
}

func (s *BreakStmt) Position() Position { return s.Pos }

func (s *BreakStmt) End() Position { return s.EndPos }

func (s *BreakStmt) Validate() error { return nil }

func (s *EmptyStmt) String() string { return Print(s) }

func (s *EmptyStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitEmptyStmt(s)
}

func (s *EmptyStmt) Position() Position { return s.Pos }

func (s *EmptyStmt) End() Position { return s.EndPos }

func (s *EmptyStmt) Validate() error { return nil }

func (s *BadStmt) String() string { return Print(s) }

func (s *BadStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitBadStmt(s)
}

func (s *BadStmt) Position() Position { return s.Pos }

func (s *BadStmt) End() Position { return s.EndPos }

func (s *BadStmt) Validate() error {
	return fmt.Errorf("statement could not be parsed")
}

// Node interface implementation for expression nodes

func (e *AssignExpr) String() string { return Print(e) }

func (e *AssignExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignExpr(e)
}

func (e *AssignExpr) Position() Position { return e.Pos }

func (e *AssignExpr) End() Position { return e.EndPos }

func (e *AssignExpr) Validate() error {
	if e.Target == nil || stringx.IsBlank(e.Target.Name) {
		return fmt.Errorf("assignment target is required")
	}
	if e.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	return nil
}

func (e *BinaryExpr) String() string { return Print(e) }

func (e *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(e)
}

func (e *BinaryExpr) Position() Position { return e.Pos }

func (e *BinaryExpr) End() Position { return e.EndPos }

func (e *BinaryExpr) Validate() error {
	if e.X == nil {
		return fmt.Errorf("left operand is required")
	}
	if e.Y == nil {
		return fmt.Errorf("right operand is required")
	}
	if !e.Op.IsBinary() {
		return fmt.Errorf("operator %s is not binary", e.Op)
	}
	return nil
}

func (e *UnaryExpr) String() string { return Print(e) }

func (e *UnaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpr(e)
}

func (e *UnaryExpr) Position() Position { return e.Pos }

func (e *UnaryExpr) End() Position { return e.EndPos }

func (e *UnaryExpr) Validate() error {
	if e.X == nil {
		return fmt.Errorf("operand is required")
	}
	if !e.Op.IsUnary() {
		return fmt.Errorf("operator %s is not unary", e.Op)
	}
	return nil
}

func (e *Ident) String() string { return Print(e) }

func (e *Ident) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdent(e)
}

func (e *Ident) Position() Position { return e.Pos }

func (e *Ident) End() Position { return e.EndPos }

func (e *Ident) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

func (e *IntLit) String() string { return Print(e) }

func (e *IntLit) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntLit(e)
}

func (e *IntLit) Position() Position { return e.Pos }

func (e *IntLit) End() Position { return e.EndPos }

func (e *IntLit) Validate() error { return nil }

func (e *CharLit) String() string { return Print(e) }

func (e *CharLit) Accept(visitor Visitor) interface{} {
	return visitor.VisitCharLit(e)
}

func (e *CharLit) Position() Position { return e.Pos }

func (e *CharLit) End() Position { return e.EndPos }

func (e *CharLit) Validate() error { return nil }

func (e *StringLit) String() string { return Print(e) }

func (e *StringLit) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLit(e)
}

func (e *StringLit) Position() Position { return e.Pos }

func (e *StringLit) End() Position { return e.EndPos }

func (e *StringLit) Validate() error { return nil }

func (e *CallExpr) String() string { return Print(e) }

func (e *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpr(e)
}

func (e *CallExpr) Position() Position { return e.Pos }

func (e *CallExpr) End() Position { return e.EndPos }

func (e *CallExpr) Validate() error {
	if e.Fun == nil || stringx.IsBlank(e.Fun.Name) {
		return fmt.Errorf("function name is required")
	}
	for i, a := range e.Args {
		if a == nil {
			return fmt.Errorf("call argument %d is nil", i)
		}
	}
	return nil
}

func (e *BadExpr) String() string { return Print(e) }

func (e *BadExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBadExpr(e)
}

func (e *BadExpr) Position() Position { return e.Pos }

func (e *BadExpr) End() Position { return e.EndPos }

func (e *BadExpr) Validate() error {
	return fmt.Errorf("expression could not be parsed")
}
