// File: doc.go
// Title: Package Documentation for ToyC AST
// Description: Provides package-level documentation for the ast package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package ast defines the abstract syntax tree for ToyC programs.
//
// The tree is an ownership hierarchy rooted at Program: every node is
// owned by exactly one parent and carries the source Position of its
// first token. Declarations, statements, and expressions are separate
// interface families (Decl, Stmt, Expr) discriminated by marker
// methods, so a switch over node types is exhaustive per family.
//
// A parse that recovered from syntax errors yields a tree containing
// BadStmt and BadExpr placeholder nodes. Node.Validate checks a single
// node's local invariants; ValidateAST walks the whole tree and
// reports every violation, including the presence of placeholders.
//
// Print renders a tree in the compact prog/funcDef/varDef notation
// used by the AST dump:
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
package ast
