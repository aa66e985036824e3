// File: visitor.go
// Title: ToyC AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              ToyC AST nodes. Provides base visitor interface and common
//              visitor implementations for analysis and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit declaration nodes
	VisitProgram(p *Program) interface{}
	VisitVarDecl(d *VarDecl) interface{}
	VisitFuncDecl(d *FuncDecl) interface{}
	VisitParam(p *Param) interface{}

	// Visit statement nodes
	VisitBlockStmt(s *BlockStmt) interface{}
	VisitExprStmt(s *ExprStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
	VisitReadStmt(s *ReadStmt) interface{}
	VisitWriteStmt(s *WriteStmt) interface{}
	VisitNewlineStmt(s *NewlineStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
	VisitBreakStmt(s *BreakStmt) interface{}
	VisitEmptyStmt(s *EmptyStmt) interface{}
	VisitBadStmt(s *BadStmt) interface{}

	// Visit expression nodes
	VisitAssignExpr(e *AssignExpr) interface{}
	VisitBinaryExpr(e *BinaryExpr) interface{}
	VisitUnaryExpr(e *UnaryExpr) interface{}
	VisitIdent(e *Ident) interface{}
	VisitIntLit(e *IntLit) interface{}
	VisitCharLit(e *CharLit) interface{}
	VisitStringLit(e *StringLit) interface{}
	VisitCallExpr(e *CallExpr) interface{}
	VisitBadExpr(e *BadExpr) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods; the
// defaults traverse the full tree in source order.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(p *Program) interface{} {
	for _, d := range p.Decls {
		if d != nil {
			d.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitVarDecl(d *VarDecl) interface{} {
	if d.Name != nil {
		d.Name.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFuncDecl(d *FuncDecl) interface{} {
	if d.Name != nil {
		d.Name.Accept(bv)
	}
	for _, p := range d.Params {
		if p != nil {
			p.Accept(bv)
		}
	}
	if d.Body != nil {
		d.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitParam(p *Param) interface{} {
	if p.Name != nil {
		p.Name.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBlockStmt(s *BlockStmt) interface{} {
	for _, d := range s.Decls {
		if d != nil {
			d.Accept(bv)
		}
	}
	for _, st := range s.Stmts {
		if st != nil {
			st.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitExprStmt(s *ExprStmt) interface{} {
	if s.X != nil {
		return s.X.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIfStmt(s *IfStmt) interface{} {
	if s.Cond != nil {
		s.Cond.Accept(bv)
	}
	if s.Then != nil {
		s.Then.Accept(bv)
	}
	if s.Else != nil {
		s.Else.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitWhileStmt(s *WhileStmt) interface{} {
	if s.Cond != nil {
		s.Cond.Accept(bv)
	}
	if s.Body != nil {
		s.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReadStmt(s *ReadStmt) interface{} {
	for _, n := range s.Names {
		if n != nil {
			n.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitWriteStmt(s *WriteStmt) interface{} {
	for _, a := range s.Args {
		if a != nil {
			a.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitNewlineStmt(s *NewlineStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitReturnStmt(s *ReturnStmt) interface{} {
	if s.Result != nil {
		return s.Result.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBreakStmt(s *BreakStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitEmptyStmt(s *EmptyStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBadStmt(s *BadStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitAssignExpr(e *AssignExpr) interface{} {
	if e.Target != nil {
		e.Target.Accept(bv)
	}
	if e.Value != nil {
		e.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	if e.X != nil {
		e.X.Accept(bv)
	}
	if e.Y != nil {
		e.Y.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitUnaryExpr(e *UnaryExpr) interface{} {
	if e.X != nil {
		return e.X.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIdent(e *Ident) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIntLit(e *IntLit) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCharLit(e *CharLit) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitStringLit(e *StringLit) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCallExpr(e *CallExpr) interface{} {
	if e.Fun != nil {
		e.Fun.Accept(bv)
	}
	for _, a := range e.Args {
		if a != nil {
			a.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitBadExpr(e *BadExpr) interface{} {
	return nil // Terminal node
}

// ValidationVisitor walks the tree and collects local validation
// errors from every node, with source positions attached
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(n Node) {
	if err := n.Validate(); err != nil {
		pos := n.Position()
		vv.errors = append(vv.errors, fmt.Errorf("%d:%d: %w", pos.Line, pos.Column, err))
	}
}

func (vv *ValidationVisitor) VisitProgram(p *Program) interface{} {
	vv.check(p)
	return vv.BaseVisitor.VisitProgram(p)
}

func (vv *ValidationVisitor) VisitVarDecl(d *VarDecl) interface{} {
	vv.check(d)
	return vv.BaseVisitor.VisitVarDecl(d)
}

func (vv *ValidationVisitor) VisitFuncDecl(d *FuncDecl) interface{} {
	vv.check(d)
	return vv.BaseVisitor.VisitFuncDecl(d)
}

func (vv *ValidationVisitor) VisitParam(p *Param) interface{} {
	vv.check(p)
	return vv.BaseVisitor.VisitParam(p)
}

func (vv *ValidationVisitor) VisitBlockStmt(s *BlockStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitBlockStmt(s)
}

func (vv *ValidationVisitor) VisitExprStmt(s *ExprStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitExprStmt(s)
}

func (vv *ValidationVisitor) VisitIfStmt(s *IfStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitIfStmt(s)
}

func (vv *ValidationVisitor) VisitWhileStmt(s *WhileStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitWhileStmt(s)
}

func (vv *ValidationVisitor) VisitReadStmt(s *ReadStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitReadStmt(s)
}

func (vv *ValidationVisitor) VisitWriteStmt(s *WriteStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitWriteStmt(s)
}

func (vv *ValidationVisitor) VisitNewlineStmt(s *NewlineStmt) interface{} {
	vv.check(s)
	return nil
}

func (vv *ValidationVisitor) VisitReturnStmt(s *ReturnStmt) interface{} {
	vv.check(s)
	return vv.BaseVisitor.VisitReturnStmt(s)
}

func (vv *ValidationVisitor) VisitBreakStmt(s *BreakStmt) interface{} {
	vv.check(s)
	return nil
}

func (vv *ValidationVisitor) VisitEmptyStmt(s *EmptyStmt) interface{} {
	vv.check(s)
	return nil
}

func (vv *ValidationVisitor) VisitBadStmt(s *BadStmt) interface{} {
	vv.check(s)
	return nil
}

func (vv *ValidationVisitor) VisitAssignExpr(e *AssignExpr) interface{} {
	vv.check(e)
	return vv.BaseVisitor.VisitAssignExpr(e)
}

func (vv *ValidationVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	vv.check(e)
	return vv.BaseVisitor.VisitBinaryExpr(e)
}

func (vv *ValidationVisitor) VisitUnaryExpr(e *UnaryExpr) interface{} {
	vv.check(e)
	return vv.BaseVisitor.VisitUnaryExpr(e)
}

func (vv *ValidationVisitor) VisitIdent(e *Ident) interface{} {
	vv.check(e)
	return nil
}

func (vv *ValidationVisitor) VisitIntLit(e *IntLit) interface{} {
	vv.check(e)
	return nil
}

func (vv *ValidationVisitor) VisitCharLit(e *CharLit) interface{} {
	vv.check(e)
	return nil
}

func (vv *ValidationVisitor) VisitStringLit(e *StringLit) interface{} {
	vv.check(e)
	return nil
}

func (vv *ValidationVisitor) VisitCallExpr(e *CallExpr) interface{} {
	vv.check(e)
	return vv.BaseVisitor.VisitCallExpr(e)
}

func (vv *ValidationVisitor) VisitBadExpr(e *BadExpr) interface{} {
	vv.check(e)
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Funcs    []*FuncDecl
	Vars     []*VarDecl
	Idents   []*Ident
	Calls    []*CallExpr
	BadNodes []Node
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Funcs:    make([]*FuncDecl, 0),
		Vars:     make([]*VarDecl, 0),
		Idents:   make([]*Ident, 0),
		Calls:    make([]*CallExpr, 0),
		BadNodes: make([]Node, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Funcs = cv.Funcs[:0]
	cv.Vars = cv.Vars[:0]
	cv.Idents = cv.Idents[:0]
	cv.Calls = cv.Calls[:0]
	cv.BadNodes = cv.BadNodes[:0]
}

func (cv *CollectorVisitor) VisitFuncDecl(d *FuncDecl) interface{} {
	cv.Funcs = append(cv.Funcs, d)
	return cv.BaseVisitor.VisitFuncDecl(d)
}

func (cv *CollectorVisitor) VisitVarDecl(d *VarDecl) interface{} {
	cv.Vars = append(cv.Vars, d)
	return cv.BaseVisitor.VisitVarDecl(d)
}

func (cv *CollectorVisitor) VisitIdent(e *Ident) interface{} {
	cv.Idents = append(cv.Idents, e)
	return nil
}

func (cv *CollectorVisitor) VisitCallExpr(e *CallExpr) interface{} {
	cv.Calls = append(cv.Calls, e)
	return cv.BaseVisitor.VisitCallExpr(e)
}

func (cv *CollectorVisitor) VisitBadStmt(s *BadStmt) interface{} {
	cv.BadNodes = append(cv.BadNodes, s)
	return nil
}

func (cv *CollectorVisitor) VisitBadExpr(e *BadExpr) interface{} {
	cv.BadNodes = append(cv.BadNodes, e)
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates the full tree under node and returns any
// validation errors. A tree built by a recovering parse fails here
// because bad placeholder nodes do not validate.
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
