package logging

import (
	"testing"
)

type line struct {
	prio Priority
	msg  string
}

func capture(t *testing.T) *[]line {
	t.Helper()
	lines := &[]line{}
	restore := SetSink(func(prio Priority, msg string) {
		*lines = append(*lines, line{prio, msg})
	})
	t.Cleanup(restore)
	return lines
}

func TestGatesDebugAndVerbose(t *testing.T) {
	lines := capture(t)
	SetDebug(false)
	SetVerbose(false)
	t.Cleanup(func() { SetDebug(false); SetVerbose(false) })

	Debug("hidden %d", 1)
	Verbose("hidden too")
	Info("shown")
	if len(*lines) != 1 || (*lines)[0].prio != LogInfo {
		t.Fatalf("expected a single info line, got %+v", *lines)
	}

	SetDebug(true)
	Debug("boost %dms", 500)
	if got := (*lines)[1]; got.prio != LogDebug || got.msg != "boost 500ms" {
		t.Fatalf("unexpected debug line: %+v", got)
	}
}

func TestTrimsTrailingNewlinesAndDropsEmpty(t *testing.T) {
	lines := capture(t)

	Error("failed\n\n")
	Warn("\n")
	if len(*lines) != 1 {
		t.Fatalf("expected one line, got %+v", *lines)
	}
	if (*lines)[0].msg != "failed" {
		t.Fatalf("trailing newlines not trimmed: %q", (*lines)[0].msg)
	}
}

func TestFormatWithoutReplacementsIsLiteral(t *testing.T) {
	lines := capture(t)

	Info("100%s done")
	if (*lines)[0].msg != "100%s done" {
		t.Fatalf("format verbs should be literal without args: %q", (*lines)[0].msg)
	}
}
