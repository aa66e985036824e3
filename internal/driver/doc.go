// File: doc.go
// Title: Package Documentation for the Compilation Driver
// Description: Provides package-level documentation for the driver
//              package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-15 v0.1.0: Initial documentation

// Package driver orchestrates compilations. It owns all file and
// terminal I/O: reading sources, dumping tokens and parse traces,
// printing the AST, and rendering diagnostics. The front end itself is
// pure; the driver decides exit codes and, in watch mode, when to
// recompile.
package driver
