// File: visitor_test.go
// Title: ToyC AST Visitor Pattern Unit Tests
// Description: Tests for the visitor pattern including base visitor
//              traversal, node collection, and deep tree validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial visitor test suite

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test AST nodes

func createTestProgram() *Program {
	// int a;
	// int main() { a = f(a + 1); return a; }
	return &Program{
		Decls: []Decl{
			&VarDecl{Type: TypeInt, Name: &Ident{Name: "a"}},
			&FuncDecl{
				Type: TypeInt,
				Name: &Ident{Name: "main"},
				Body: &BlockStmt{
					Stmts: []Stmt{
						&ExprStmt{
							X: &AssignExpr{
								Target: &Ident{Name: "a"},
								Value: &CallExpr{
									Fun: &Ident{Name: "f"},
									Args: []Expr{
										&BinaryExpr{
											X:  &Ident{Name: "a"},
											Op: OpAdd,
											Y:  &IntLit{Value: 1},
										},
									},
								},
							},
						},
						&ReturnStmt{Result: &Ident{Name: "a"}},
					},
				},
			},
		},
	}
}

func createRecoveredProgram() *Program {
	return &Program{
		Decls: []Decl{
			&FuncDecl{
				Type: TypeInt,
				Name: &Ident{Name: "main"},
				Body: &BlockStmt{
					Stmts: []Stmt{
						&BadStmt{Pos: Position{Line: 2, Column: 5}},
						&ExprStmt{X: &BadExpr{Pos: Position{Line: 3, Column: 9}}},
					},
				},
			},
		},
	}
}

// countingVisitor counts visited nodes by kind
type countingVisitor struct {
	BaseVisitor
	stmts int
	exprs int
}

func (cv *countingVisitor) VisitExprStmt(s *ExprStmt) interface{} {
	cv.stmts++
	return cv.BaseVisitor.VisitExprStmt(s)
}

func (cv *countingVisitor) VisitReturnStmt(s *ReturnStmt) interface{} {
	cv.stmts++
	return cv.BaseVisitor.VisitReturnStmt(s)
}

func (cv *countingVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	cv.exprs++
	return cv.BaseVisitor.VisitBinaryExpr(e)
}

func TestBaseVisitorTraversal(t *testing.T) {
	prog := createTestProgram()

	cv := &countingVisitor{}
	prog.Accept(cv)

	if cv.stmts != 2 {
		t.Errorf("visited %d statements, want 2", cv.stmts)
	}
	if cv.exprs != 1 {
		t.Errorf("visited %d binary expressions, want 1", cv.exprs)
	}
}

func TestCollectorVisitor(t *testing.T) {
	prog := createTestProgram()

	collector := CollectNodes(prog)

	if len(collector.Funcs) != 1 {
		t.Errorf("collected %d functions, want 1", len(collector.Funcs))
	}
	if len(collector.Vars) != 1 {
		t.Errorf("collected %d variable definitions, want 1", len(collector.Vars))
	}
	if len(collector.Calls) != 1 {
		t.Errorf("collected %d calls, want 1", len(collector.Calls))
	}

	// a (decl), main, a (target), f, a (operand), a (return) = 6
	if len(collector.Idents) != 6 {
		t.Errorf("collected %d identifiers, want 6", len(collector.Idents))
	}
}

func TestCollectorVisitorReset(t *testing.T) {
	collector := CollectNodes(createTestProgram())
	collector.Reset()

	if len(collector.Funcs) != 0 || len(collector.Idents) != 0 {
		t.Error("Reset() did not clear collected nodes")
	}
}

func TestCollectorFindsBadNodes(t *testing.T) {
	collector := CollectNodes(createRecoveredProgram())

	if len(collector.BadNodes) != 2 {
		t.Errorf("collected %d bad nodes, want 2", len(collector.BadNodes))
	}
}

func TestValidateASTCleanTree(t *testing.T) {
	errs := ValidateAST(createTestProgram())
	if len(errs) != 0 {
		t.Errorf("ValidateAST() returned %d errors for a clean tree: %v", len(errs), errs)
	}
}

func TestValidateASTRecoveredTree(t *testing.T) {
	errs := ValidateAST(createRecoveredProgram())

	if len(errs) != 2 {
		t.Fatalf("ValidateAST() returned %d errors, want 2: %v", len(errs), errs)
	}

	if !strings.Contains(errs[0].Error(), "2:5") {
		t.Errorf("first error %q does not carry position 2:5", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "could not be parsed") {
		t.Errorf("second error %q does not name the parse failure", errs[1])
	}
}

func TestValidateASTFindsDeepViolations(t *testing.T) {
	prog := &Program{
		Decls: []Decl{
			&FuncDecl{
				Type: TypeInt,
				Name: &Ident{Name: "main"},
				Body: &BlockStmt{
					Stmts: []Stmt{
						&ExprStmt{
							// binary node misusing the unary operator
							X: &BinaryExpr{
								X:  &IntLit{Value: 1},
								Op: OpNot,
								Y:  &IntLit{Value: 2},
							},
						},
					},
				},
			},
		},
	}

	errs := ValidateAST(prog)
	if len(errs) != 1 {
		t.Fatalf("ValidateAST() returned %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "not binary") {
		t.Errorf("error %q does not name the operator misuse", errs[0])
	}
}
