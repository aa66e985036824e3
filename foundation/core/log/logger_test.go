// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for logger construction, level filtering, contextual
//              fields, formatter output, and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-10
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-10 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("warning message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("suppressed levels leaked into output: %q", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("warn message missing from output: %q", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("error message missing from output: %q", output)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: &buf,
		Name:   "driver",
	})

	logger.Info("compiling", Field("file", "sample.tc"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if data["level"] != "info" {
		t.Errorf("level = %v, want info", data["level"])
	}
	if data["message"] != "compiling" {
		t.Errorf("message = %v, want compiling", data["message"])
	}
	if data["logger"] != "driver" {
		t.Errorf("logger = %v, want driver", data["logger"])
	}
	if data["file"] != "sample.tc" {
		t.Errorf("file = %v, want sample.tc", data["file"])
	}
}

func TestLoggerWithFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	derived := base.WithField("run_id", "abc123")
	derived.Info("hello")

	if !strings.Contains(buf.String(), "run_id=abc123") {
		t.Errorf("context field missing: %q", buf.String())
	}

	// The parent logger must stay untouched
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "run_id") {
		t.Errorf("WithField mutated the parent logger: %q", buf.String())
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.ErrorWithErr("open failed", errors.New("no such file"))

	output := buf.String()
	if !strings.Contains(output, `error="no such file"`) {
		t.Errorf("error detail missing: %q", output)
	}
}

func TestTextFormatterStableFieldOrder(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "msg")
	entry.Fields["b"] = 2
	entry.Fields["a"] = 1
	entry.Fields["c"] = 3

	first, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := formatter.Format(entry)
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("field order not stable: %q vs %q", first, next)
		}
	}
	if !strings.Contains(string(first), "a=1 b=2 c=3") {
		t.Errorf("fields not sorted: %q", first)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	formatter := NewConsoleFormatter()
	formatter.TextFormatter.DisableTimestamp = true

	entry := NewEntry(LevelError, "boom")
	out, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(string(out), LevelError.Color()) {
		t.Errorf("colored output missing ANSI code: %q", out)
	}

	formatter.DisableColors = true
	out, err = formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors present despite DisableColors: %q", out)
	}
}

func TestTimerLogsDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
	})

	timer := logger.StartTimer("compile").WithField("file", "a.tc")
	elapsed := timer.Stop()
	if elapsed <= 0 {
		t.Errorf("elapsed = %v, want > 0", elapsed)
	}

	output := buf.String()
	if !strings.Contains(output, "compile completed") {
		t.Errorf("completion message missing: %q", output)
	}
	if !strings.Contains(output, "file=a.tc") {
		t.Errorf("timer field missing: %q", output)
	}

	// Second Stop is a no-op
	if second := timer.Stop(); second != 0 {
		t.Errorf("second Stop() = %v, want 0", second)
	}
}

func TestDefaultLogger(t *testing.T) {
	old := GetDefault()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	}))

	Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger did not receive message: %q", buf.String())
	}
}
