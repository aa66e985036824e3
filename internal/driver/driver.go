// File: driver.go
// Title: ToyC Compilation Driver
// Description: Orchestrates the compilation of source files: reads each
//              file, runs the front end over it, and renders token
//              dumps, parse traces, the AST, and diagnostics. Owns all
//              file and terminal I/O; the front end itself never touches
//              either.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-15 v0.1.0: Initial driver implementation

package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	toycerror "github.com/msto63/toyc/foundation/core/error"
	toyclog "github.com/msto63/toyc/foundation/core/log"
	"github.com/msto63/toyc/internal/toyc/ast"
	"github.com/msto63/toyc/internal/toyc/diag"
	"github.com/msto63/toyc/internal/toyc/parser"
)

// astHeader precedes the tree rendering of a parsed file
const astHeader = "<< Abstract Syntax >>"

// DebugLevel selects which front-end stages dump their intermediate
// results
type DebugLevel int

const (
	// DebugOff dumps nothing
	DebugOff DebugLevel = iota

	// DebugLexerOnly dumps the token stream
	DebugLexerOnly

	// DebugParserOnly dumps the parse trace
	DebugParserOnly

	// DebugAll dumps the token stream and the parse trace
	DebugAll
)

// String returns the flag form of the debug level
func (d DebugLevel) String() string {
	switch d {
	case DebugOff:
		return "off"
	case DebugLexerOnly:
		return "lexer-only"
	case DebugParserOnly:
		return "parser-only"
	case DebugAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseDebugLevel converts a flag value into a DebugLevel
func ParseDebugLevel(s string) (DebugLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return DebugOff, nil
	case "lexer-only", "lexer":
		return DebugLexerOnly, nil
	case "parser-only", "parser":
		return DebugParserOnly, nil
	case "all":
		return DebugAll, nil
	default:
		return DebugOff, toycerror.Newf("unknown debug level %q", s).
			WithCode(toycerror.CodeOptionInvalid).
			WithOperation("driver.ParseDebugLevel").
			WithDetail("valid_levels", "off, lexer-only, parser-only, all")
	}
}

// Options configures a driver
type Options struct {
	Debug     DebugLevel      // Which intermediate results to dump
	ShowAST   bool            // Render the tree of each parsed file
	Color     bool            // Style diagnostics for a terminal
	Jobs      int             // Concurrent compilations, sequential when < 2
	MaxErrors int             // Per-file syntax error cap, parser default when 0
	Stdout    io.Writer       // Dump and tree output, os.Stdout when nil
	Stderr    io.Writer       // Diagnostics output, os.Stderr when nil
	Logger    *toyclog.Logger // Logger for run events, default logger when nil
}

// Driver compiles ToyC source files and renders the results. A driver
// is safe to reuse across runs; each compiled file gets fresh front-end
// state.
type Driver struct {
	opts   Options
	logger *toyclog.Logger
	runID  string

	// writeMu serializes rendering when files compile concurrently
	writeMu sync.Mutex
}

// New creates a driver with the given options. Front-end options are
// validated here so a bad configuration surfaces before any file is
// read.
func New(opts Options) (*Driver, error) {
	if opts.Jobs < 0 {
		return nil, toycerror.New("jobs must not be negative").
			WithCode(toycerror.CodeOptionInvalid).
			WithOperation("driver.New")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = toyclog.GetDefault()
	}

	// A defective parser configuration or grammar table fails here
	if _, err := parser.New(parser.Options{Logger: opts.Logger, MaxErrors: opts.MaxErrors}); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	return &Driver{
		opts: opts,
		logger: opts.Logger.WithFields(toyclog.Fields{
			"component": "toyc-driver",
			"run":       runID,
		}),
		runID: runID,
	}, nil
}

// fileResult carries one file's rendered output so concurrent
// compilations can still print in input order
type fileResult struct {
	filename string
	stdout   string
	stderr   string
	failed   bool
}

// Run compiles the given files and renders their results in input
// order. The exit code is 0 when every file compiled without errors and
// 1 otherwise; the error return is reserved for driver-level failures.
func (d *Driver) Run(ctx context.Context, files []string) (int, error) {
	if len(files) == 0 {
		return 1, toycerror.New("no input files").
			WithCode(toycerror.CodeOptionInvalid).
			WithOperation("driver.Run")
	}

	d.logger.Info("compilation started", toyclog.Fields{
		"files": len(files),
		"jobs":  d.opts.Jobs,
	})

	results := d.compileAll(ctx, files)

	exit := 0
	for _, r := range results {
		if r.stdout != "" {
			fmt.Fprint(d.opts.Stdout, r.stdout)
		}
		if r.stderr != "" {
			fmt.Fprint(d.opts.Stderr, r.stderr)
		}
		if r.failed {
			exit = 1
		}
	}

	d.logger.Info("compilation finished", toyclog.Fields{
		"files": len(files),
		"exit":  exit,
	})
	return exit, nil
}

// compileAll compiles every file, concurrently when more than one job
// is configured. Results come back indexed by input position.
func (d *Driver) compileAll(ctx context.Context, files []string) []fileResult {
	jobs := d.opts.Jobs
	if jobs > len(files) {
		jobs = len(files)
	}
	if jobs < 2 {
		results := make([]fileResult, 0, len(files))
		for _, f := range files {
			if ctx.Err() != nil {
				break
			}
			results = append(results, d.compileFile(f))
		}
		return results
	}

	results := make([]fileResult, len(files))
	work := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = d.compileFile(files[i])
			}
		}()
	}

	for i := range files {
		if ctx.Err() != nil {
			break
		}
		work <- i
	}
	close(work)
	wg.Wait()
	return results
}

// compileFile runs the front end over one file and renders everything
// the options ask for
func (d *Driver) compileFile(filename string) fileResult {
	timer := d.logger.StartTimer("compile").WithField("file", filename)
	defer timer.Stop()

	src, err := os.ReadFile(filename)
	if err != nil {
		ioErr := toycerror.Wrap(err, "cannot read source file").
			WithCode(toycerror.CodeIOFailed).
			WithOperation("driver.compileFile")
		d.logger.Error("read failed", toyclog.Fields{"file": filename, "error": ioErr.Error()})
		return fileResult{
			filename: filename,
			stderr:   fmt.Sprintf("toyc: %s: %v\n", filename, err),
			failed:   true,
		}
	}

	var out strings.Builder

	if d.opts.Debug == DebugLexerOnly || d.opts.Debug == DebugAll {
		d.dumpTokens(&out, filename, string(src))
	}

	p, err := parser.New(parser.Options{
		Logger:    d.opts.Logger,
		MaxErrors: d.opts.MaxErrors,
		Trace:     d.opts.Debug == DebugParserOnly || d.opts.Debug == DebugAll,
	})
	if err != nil {
		// Options were validated in New; this cannot happen on a
		// well-formed driver
		return fileResult{filename: filename, stderr: err.Error() + "\n", failed: true}
	}

	res := p.ParseFile(filename, string(src))

	for _, e := range res.Trace {
		out.WriteString(e.String())
		out.WriteString("\n")
	}

	if d.opts.ShowAST {
		out.WriteString(astHeader)
		out.WriteString("\n")
		out.WriteString(ast.Print(res.Program))
		out.WriteString("\n")
	}

	diags := res.Bag.FormatAll(diag.RenderOptions{ShowSource: true, Color: d.opts.Color})
	if diags != "" {
		diags += "\n"
	}

	d.logger.Debug("file compiled", toyclog.Fields{
		"file":        filename,
		"definitions": len(res.Program.Decls),
		"diagnostics": res.Bag.Count(),
		"failed":      res.Bag.HasErrors(),
	})

	return fileResult{
		filename: filename,
		stdout:   out.String(),
		stderr:   diags,
		failed:   res.Bag.HasErrors(),
	}
}

// dumpTokens renders the file's token stream one token per line. The
// dump uses its own diagnostics bag; lexical problems are reported by
// the real parse that follows, not twice.
func (d *Driver) dumpTokens(out *strings.Builder, filename, src string) {
	bag := diag.NewBag(filename, []byte(src))
	lex := parser.NewLexer(filename, src, bag)
	for _, tok := range lex.Tokenize() {
		out.WriteString(tok.String())
		out.WriteString("\n")
	}
}
