// Package log provides structured logging for the toyc toolchain.
//
// Package: log
// Title: toyc Structured Logging
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, and log levels.
//              It carries the compiler driver's operational logging; it is
//              not the channel for source-code diagnostics, which flow
//              through internal/toyc/diag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial implementation
//
// Features:
// - Structured logging with JSON, text, and console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with custom fields
// - Timing measurements for per-file compilation
//
// Usage:
//   import toyclog "github.com/msto63/toyc/foundation/core/log"
//
//   logger := toyclog.New().
//     WithLevel(toyclog.LevelDebug).
//     WithFormat(toyclog.FormatConsole).
//     WithField("run_id", runID)
//
//   logger.Info("compiling", toyclog.Field("file", name))
//
//   timer := logger.StartTimer("compile")
//   // ... run the front end
//   timer.Stop()
package log
