// File: diag_test.go
// Title: ToyC Diagnostics Unit Tests
// Description: Tests for diagnostic collection ordering, error
//              counting, and canonical rendering with and without
//              source excerpts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-12 v0.1.0: Initial diagnostics tests

package diag

import (
	"strings"
	"testing"

	"github.com/msto63/toyc/internal/toyc/ast"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{"error", SeverityError, "error"},
		{"warning", SeverityWarning, "warning"},
		{"note", SeverityNote, "note"},
		{"unknown", Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"lexical", KindLexical, "lexical"},
		{"syntax", KindSyntax, "syntax"},
		{"structural", KindStructural, "structural"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBagCollectsInOrder(t *testing.T) {
	bag := NewBag("test.tc", []byte("int a;\nint b;\n"))

	bag.Error(KindLexical, ast.Position{Line: 1, Column: 2}, "first")
	bag.Warning(KindSyntax, ast.Position{Line: 1, Column: 5}, "second")
	bag.Error(KindSyntax, ast.Position{Line: 2, Column: 1}, "third")

	all := bag.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d diagnostics, want 3", len(all))
	}

	wantMessages := []string{"first", "second", "third"}
	for i, d := range all {
		if d.Message != wantMessages[i] {
			t.Errorf("diagnostic %d message = %q, want %q", i, d.Message, wantMessages[i])
		}
	}
}

func TestBagErrorCounting(t *testing.T) {
	bag := NewBag("test.tc", nil)

	if bag.HasErrors() {
		t.Error("HasErrors() = true for empty bag")
	}

	bag.Warning(KindLexical, ast.Position{Line: 1, Column: 1}, "just a warning")
	if bag.HasErrors() {
		t.Error("HasErrors() = true with only warnings")
	}

	bag.Error(KindSyntax, ast.Position{Line: 1, Column: 2}, "an error")
	bag.Error(KindSyntax, ast.Position{Line: 1, Column: 3}, "another error")

	if !bag.HasErrors() {
		t.Error("HasErrors() = false after reporting errors")
	}
	if got := bag.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
	if got := bag.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	bag := NewBag("test.tc", nil)
	bag.Error(KindSyntax, ast.Position{Line: 1, Column: 1}, "original")

	all := bag.All()
	all[0].Message = "mutated"

	if bag.All()[0].Message != "original" {
		t.Error("mutating All() result changed the bag contents")
	}
}

func TestFormatCanonicalLine(t *testing.T) {
	bag := NewBag("test.tc", []byte("int a;\n"))
	d := Diagnostic{
		Pos:      ast.Position{Line: 1, Column: 5},
		Severity: SeverityError,
		Kind:     KindSyntax,
		Message:  "got: (NUMBER, \"3\"), expected: ;",
	}

	got := bag.Format(d, RenderOptions{})
	want := `test.tc:1:5: error: got: (NUMBER, "3"), expected: ;`
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatWithSourceExcerpt(t *testing.T) {
	src := "int main() {\n  a = ;\n}\n"
	bag := NewBag("demo.tc", []byte(src))
	d := Diagnostic{
		Pos:      ast.Position{Line: 2, Column: 7},
		Severity: SeverityError,
		Kind:     KindSyntax,
		Message:  "unexpected ;",
	}

	got := bag.Format(d, RenderOptions{ShowSource: true})
	want := "demo.tc:2:7: error: unexpected ;\n" +
		"  a = ;\n" +
		"      ^~~ happened here"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatSourceExcerptOutOfRange(t *testing.T) {
	bag := NewBag("demo.tc", []byte("int a;\n"))
	d := Diagnostic{
		Pos:      ast.Position{Line: 99, Column: 1},
		Severity: SeverityError,
		Kind:     KindStructural,
		Message:  "unexpected end of file",
	}

	got := bag.Format(d, RenderOptions{ShowSource: true})
	if strings.Contains(got, "\n") {
		t.Errorf("Format() included an excerpt for a missing line: %q", got)
	}
}

func TestFormatColorKeepsMessage(t *testing.T) {
	bag := NewBag("demo.tc", []byte("int a;\n"))
	d := Diagnostic{
		Pos:      ast.Position{Line: 1, Column: 1},
		Severity: SeverityWarning,
		Kind:     KindLexical,
		Message:  "ignoring illegal character",
	}

	got := bag.Format(d, RenderOptions{Color: true})
	if !strings.Contains(got, "ignoring illegal character") {
		t.Errorf("Format() with color lost the message: %q", got)
	}
}

func TestFormatAll(t *testing.T) {
	bag := NewBag("demo.tc", []byte("x\ny\n"))
	bag.Error(KindSyntax, ast.Position{Line: 1, Column: 1}, "one")
	bag.Error(KindSyntax, ast.Position{Line: 2, Column: 1}, "two")

	got := bag.FormatAll(RenderOptions{})
	want := "demo.tc:1:1: error: one\ndemo.tc:2:1: error: two"
	if got != want {
		t.Errorf("FormatAll() = %q, want %q", got, want)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	bag := NewBag("demo.tc", nil)
	if got := bag.FormatAll(RenderOptions{}); got != "" {
		t.Errorf("FormatAll() = %q for empty bag, want empty string", got)
	}
}

func TestLineLookup(t *testing.T) {
	bag := NewBag("demo.tc", []byte("first\r\nsecond\nthird"))

	tests := []struct {
		name   string
		number int
		want   string
		ok     bool
	}{
		{"first line with CR stripped", 1, "first", true},
		{"middle line", 2, "second", true},
		{"last line without newline", 3, "third", true},
		{"line zero", 0, "", false},
		{"past the end", 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bag.Line(tt.number)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Line(%d) = (%q, %v), want (%q, %v)", tt.number, got, ok, tt.want, tt.ok)
			}
		})
	}
}
