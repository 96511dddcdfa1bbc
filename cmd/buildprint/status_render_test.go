package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Guardrail", statusError, "stale", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Guardrail:", "[ERROR] stale")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Guardrail", statusOK, "up to date", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderMark(t *testing.T) {
	if got := renderMark(statusOK, "done", false); got != "✓ done" {
		t.Fatalf("unexpected ok mark: %q", got)
	}
	if got := renderMark(statusError, "failed", false); got != "✗ failed" {
		t.Fatalf("unexpected error mark: %q", got)
	}
	if got := renderMark(statusError, "failed", true); !strings.HasPrefix(got, ansiRed) {
		t.Fatalf("expected red prefix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestReportErrorUnexpected(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("disk on fire"))
	if got := buf.String(); !strings.Contains(got, "✗ Unexpected error: disk on fire") {
		t.Fatalf("unexpected report: %q", got)
	}
}
