// File: print_test.go
// Title: ToyC AST Tree Printer Unit Tests
// Description: Tests for the tree printer covering inline rendering of
//              short nodes, multi-line layout, list rendering, and
//              literal escaping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial printer tests

package ast

import (
	"testing"
)

func TestPrintShortExpressions(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"identifier", &Ident{Name: "x"}, "x"},
		{"int literal", &IntLit{Value: 42, Raw: "42"}, "42"},
		{"int literal with leading zeros", &IntLit{Value: 7, Raw: "007"}, "7"},
		{"char literal", &CharLit{Value: 'a', Raw: "'a'"}, "a"},
		{"escaped char literal", &CharLit{Value: '\n', Raw: `'\n'`}, `\n`},
		{"string literal", &StringLit{Value: "hi", Raw: `"hi"`}, `string("hi")`},
		{"string literal with escape", &StringLit{Value: "hi\n", Raw: `"hi\n"`}, `string("hi\n")`},
		{
			"flat binary expression",
			&BinaryExpr{X: &IntLit{Value: 2}, Op: OpMul, Y: &IntLit{Value: 5}},
			"expr(MUL, 2, 5)",
		},
		{
			"unary minus",
			&UnaryExpr{Op: OpSub, X: &IntLit{Value: 5}},
			"minus(5)",
		},
		{
			"unary plus",
			&UnaryExpr{Op: OpAdd, X: &IntLit{Value: 3}},
			"plus(3)",
		},
		{
			"unary not",
			&UnaryExpr{Op: OpNot, X: &Ident{Name: "done"}},
			"not(done)",
		},
		{
			"call with short args",
			&CallExpr{Fun: &Ident{Name: "f"}, Args: []Expr{&IntLit{Value: 1}, &Ident{Name: "x"}}},
			"funcCall(f, [1, x])",
		},
		{
			"read statement",
			&ReadStmt{Names: []*Ident{{Name: "a"}, {Name: "b"}}},
			"readState([a, b])",
		},
		{"break statement", &BreakStmt{}, "breakState()"},
		{"null statement", &EmptyStmt{}, "nullState()"},
		{"newline statement", &NewlineStmt{}, "newLineState()"},
		{"empty return", &ReturnStmt{}, "returnState()"},
		{"bad statement", &BadStmt{}, "badState()"},
		{"bad expression", &BadExpr{}, "badExpr()"},
		{
			"variable definition",
			&VarDecl{Type: TypeInt, Name: &Ident{Name: "a"}},
			"varDef([a], int)",
		},
		{
			"empty block",
			&BlockStmt{},
			"blockState([], [])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintNestedExpression(t *testing.T) {
	// a = 3 + 2 * 5 with precedence encoded in the tree shape
	node := &AssignExpr{
		Target: &Ident{Name: "a"},
		Value: &BinaryExpr{
			X:  &IntLit{Value: 3},
			Op: OpAdd,
			Y: &BinaryExpr{
				X:  &IntLit{Value: 2},
				Op: OpMul,
				Y:  &IntLit{Value: 5},
			},
		},
	}

	want := `expr(
  ASSIGN,
  a,
  expr(
    ADD,
    3,
    expr(MUL, 2, 5)
  )
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintFunctionDefinition(t *testing.T) {
	node := &FuncDecl{
		Type: TypeInt,
		Name: &Ident{Name: "main"},
		Body: &BlockStmt{},
	}

	want := `funcDef(
  main,
  int,
  [],
  blockState([], [])
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintFunctionWithParams(t *testing.T) {
	node := &FuncDecl{
		Type: TypeChar,
		Name: &Ident{Name: "pick"},
		Params: []*Param{
			{Type: TypeInt, Name: &Ident{Name: "n"}},
			{Type: TypeChar, Name: &Ident{Name: "c"}},
		},
		Body: &BlockStmt{},
	}

	want := `funcDef(
  pick,
  char,
  [
    varDef([n], int),
    varDef([c], char)
  ],
  blockState([], [])
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintIfWithoutElse(t *testing.T) {
	node := &IfStmt{
		Cond: &Ident{Name: "x"},
		Then: &BreakStmt{},
	}

	want := `ifState(
  x,
  breakState()
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintIfWithElse(t *testing.T) {
	node := &IfStmt{
		Cond: &Ident{Name: "x"},
		Then: &BreakStmt{},
		Else: &EmptyStmt{},
	}

	want := `ifState(
  x,
  breakState(),
  nullState()
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintBlockWithDeclAndAssignment(t *testing.T) {
	node := &BlockStmt{
		Decls: []*VarDecl{
			{Type: TypeInt, Name: &Ident{Name: "a"}},
		},
		Stmts: []Stmt{
			&ExprStmt{
				X: &AssignExpr{
					Target: &Ident{Name: "a"},
					Value: &BinaryExpr{
						X:  &IntLit{Value: 3},
						Op: OpAdd,
						Y: &BinaryExpr{
							X:  &IntLit{Value: 2},
							Op: OpMul,
							Y:  &IntLit{Value: 5},
						},
					},
				},
			},
		},
	}

	want := `blockState(
  [
    varDef([a], int)
  ],
  [
    exprState(
      expr(
        ASSIGN,
        a,
        expr(
          ADD,
          3,
          expr(MUL, 2, 5)
        )
      )
    )
  ]
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintProgram(t *testing.T) {
	node := &Program{
		Decls: []Decl{
			&VarDecl{Type: TypeInt, Name: &Ident{Name: "a"}},
			&FuncDecl{
				Type: TypeInt,
				Name: &Ident{Name: "main"},
				Body: &BlockStmt{},
			},
		},
	}

	want := `prog(
  varDef([a], int),
  funcDef(
    main,
    int,
    [],
    blockState([], [])
  )
)`

	if got := Print(node); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintEmptyProgram(t *testing.T) {
	if got := Print(&Program{}); got != "prog()" {
		t.Errorf("Print() = %q, want %q", got, "prog()")
	}
}

func TestStringDelegatesToPrint(t *testing.T) {
	node := &BinaryExpr{X: &IntLit{Value: 1}, Op: OpAdd, Y: &IntLit{Value: 2}}
	if node.String() != Print(node) {
		t.Error("String() and Print() disagree")
	}
}
