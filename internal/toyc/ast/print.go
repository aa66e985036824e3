// File: print.go
// Title: ToyC AST Tree Printer
// Description: Renders AST nodes as an indented tree in the
//              prog/funcDef/varDef notation. Nodes whose parts are all
//              atomic render on one line, everything else spreads over
//              multiple lines with two-space indentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial tree printer

package ast

import (
	"strconv"
	"strings"
)

// indentSize is the number of spaces added per nesting level
const indentSize = 2

// Print returns the tree representation of a node, for example:
//
//	prog(
//	  varDef([a], int),
//	  funcDef(
//	    main,
//	    int,
//	    [],
//	    blockState([], [])
//	  )
//	)
func Print(node Node) string {
	return printNode(node, 0)
}

// piece is one printable slot inside a group or list. Short pieces may
// share a line with their siblings; a single long piece forces the
// whole group onto multiple lines.
type piece struct {
	short  bool
	render func(indent int) string
}

func atom(s string) piece {
	return piece{short: true, render: func(int) string { return s }}
}

func nodePiece(n Node) piece {
	return piece{
		short:  isShort(n),
		render: func(indent int) string { return printNode(n, indent) },
	}
}

func listPiece(elems []piece) piece {
	return piece{
		short:  allShort(elems),
		render: func(indent int) string { return renderList(elems, indent) },
	}
}

func allShort(elems []piece) bool {
	for _, e := range elems {
		if !e.short {
			return false
		}
	}
	return true
}

// isShort reports whether a node renders as a single atom. Only bare
// identifiers and numeric or character literals qualify.
func isShort(n Node) bool {
	switch n.(type) {
	case *Ident, *IntLit, *CharLit:
		return true
	default:
		return false
	}
}

func renderGroup(name string, elems []piece, indent int) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(")
	writeElems(&b, elems, indent)
	b.WriteString(")")
	return b.String()
}

func renderList(elems []piece, indent int) string {
	var b strings.Builder
	b.WriteString("[")
	writeElems(&b, elems, indent)
	b.WriteString("]")
	return b.String()
}

func writeElems(b *strings.Builder, elems []piece, indent int) {
	if len(elems) == 0 {
		return
	}

	short := allShort(elems)
	if !short {
		b.WriteString("\n")
	}

	for i, e := range elems {
		if !short {
			b.WriteString(strings.Repeat(" ", indent+indentSize))
		}
		b.WriteString(e.render(indent + indentSize))
		if i < len(elems)-1 {
			b.WriteString(",")
			if short {
				b.WriteString(" ")
			}
		}
		if !short {
			b.WriteString("\n")
		}
	}

	if !short {
		b.WriteString(strings.Repeat(" ", indent))
	}
}

func identPieces(names []*Ident) []piece {
	elems := make([]piece, 0, len(names))
	for _, n := range names {
		if n != nil {
			elems = append(elems, nodePiece(n))
		}
	}
	return elems
}

func exprPieces(exprs []Expr) []piece {
	elems := make([]piece, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			elems = append(elems, nodePiece(e))
		}
	}
	return elems
}

func stmtPieces(stmts []Stmt) []piece {
	elems := make([]piece, 0, len(stmts))
	for _, s := range stmts {
		if s != nil {
			elems = append(elems, nodePiece(s))
		}
	}
	return elems
}

func varDeclPieces(decls []*VarDecl) []piece {
	elems := make([]piece, 0, len(decls))
	for _, d := range decls {
		if d != nil {
			elems = append(elems, nodePiece(d))
		}
	}
	return elems
}

func printNode(n Node, indent int) string {
	switch x := n.(type) {
	case *Program:
		elems := make([]piece, 0, len(x.Decls))
		for _, d := range x.Decls {
			if d != nil {
				elems = append(elems, nodePiece(d))
			}
		}
		return renderGroup("prog", elems, indent)

	case *VarDecl:
		return renderGroup("varDef", []piece{
			listPiece(identPieces([]*Ident{x.Name})),
			atom(x.Type.String()),
		}, indent)

	case *FuncDecl:
		params := make([]piece, 0, len(x.Params))
		for _, p := range x.Params {
			if p != nil {
				params = append(params, nodePiece(p))
			}
		}
		elems := []piece{
			atom(identText(x.Name)),
			atom(x.Type.String()),
			listPiece(params),
		}
		if x.Body != nil {
			elems = append(elems, nodePiece(x.Body))
		}
		return renderGroup("funcDef", elems, indent)

	case *Param:
		// Parameters print in the same shape as variable definitions.
		return renderGroup("varDef", []piece{
			listPiece(identPieces([]*Ident{x.Name})),
			atom(x.Type.String()),
		}, indent)

	case *BlockStmt:
		return renderGroup("blockState", []piece{
			listPiece(varDeclPieces(x.Decls)),
			listPiece(stmtPieces(x.Stmts)),
		}, indent)

	case *ExprStmt:
		elems := []piece{}
		if x.X != nil {
			elems = append(elems, nodePiece(x.X))
		}
		return renderGroup("exprState", elems, indent)

	case *IfStmt:
		elems := []piece{}
		if x.Cond != nil {
			elems = append(elems, nodePiece(x.Cond))
		}
		if x.Then != nil {
			elems = append(elems, nodePiece(x.Then))
		}
		if x.Else != nil {
			elems = append(elems, nodePiece(x.Else))
		}
		return renderGroup("ifState", elems, indent)

	case *WhileStmt:
		elems := []piece{}
		if x.Cond != nil {
			elems = append(elems, nodePiece(x.Cond))
		}
		if x.Body != nil {
			elems = append(elems, nodePiece(x.Body))
		}
		return renderGroup("whileState", elems, indent)

	case *ReadStmt:
		return renderGroup("readState", []piece{
			listPiece(identPieces(x.Names)),
		}, indent)

	case *WriteStmt:
		return renderGroup("writeState", []piece{
			listPiece(exprPieces(x.Args)),
		}, indent)

	case *NewlineStmt:
		return "newLineState()"

	case *ReturnStmt:
		elems := []piece{}
		if x.Result != nil {
			elems = append(elems, nodePiece(x.Result))
		}
		return renderGroup("returnState", elems, indent)

	case *BreakStmt:
		return "breakState()"

	case *EmptyStmt:
		return "nullState()"

	case *BadStmt:
		return "badState()"

	case *AssignExpr:
		elems := []piece{atom("ASSIGN")}
		if x.Target != nil {
			elems = append(elems, nodePiece(x.Target))
		}
		if x.Value != nil {
			elems = append(elems, nodePiece(x.Value))
		}
		return renderGroup("expr", elems, indent)

	case *BinaryExpr:
		elems := []piece{atom(x.Op.Tag())}
		if x.X != nil {
			elems = append(elems, nodePiece(x.X))
		}
		if x.Y != nil {
			elems = append(elems, nodePiece(x.Y))
		}
		return renderGroup("expr", elems, indent)

	case *UnaryExpr:
		var name string
		switch x.Op {
		case OpSub:
			name = "minus"
		case OpAdd:
			name = "plus"
		default:
			name = "not"
		}
		elems := []piece{}
		if x.X != nil {
			elems = append(elems, nodePiece(x.X))
		}
		return renderGroup(name, elems, indent)

	case *Ident:
		return x.Name

	case *IntLit:
		return strconv.FormatInt(int64(x.Value), 10)

	case *CharLit:
		return charText(x.Value)

	case *StringLit:
		return "string(" + strconv.Quote(x.Value) + ")"

	case *CallExpr:
		return renderGroup("funcCall", []piece{
			atom(identText(x.Fun)),
			listPiece(exprPieces(x.Args)),
		}, indent)

	case *BadExpr:
		return "badExpr()"

	default:
		return "unknown()"
	}
}

func identText(id *Ident) string {
	if id == nil {
		return ""
	}
	return id.Name
}

// charText renders a character literal's value, escaping characters
// that would break the tree layout
func charText(b byte) string {
	if b >= 0x20 && b != 0x7f {
		return string(b)
	}
	q := strconv.QuoteRune(rune(b))
	return q[1 : len(q)-1]
}
