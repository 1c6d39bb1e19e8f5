package game

import (
	"errors"
	"strings"
	"testing"
)

func TestMatchDebugReport(t *testing.T) {
	ts := NewTestSim(WithBall(ArenaWidth, ArenaHeight/2, 5, 0))
	ts.RunTicks(3)

	out := matchDebugReport(ts.Reporter, ts.SimLog, ts.Session.Tick(), ts.Session.Match(), 600)
	for _, want := range []string{
		"--- Foot Pong debug report ---",
		"tick_range=[0..3]",
		"=== Match Report",
		"--- Summary at T=003 ---",
		"score     point",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestMatchDebugReport_EmptyRange(t *testing.T) {
	out := matchDebugReport(NewMatchReporter(), NewSimLog(false), 0, Match{Phase: PhasePaused}, 0)
	if !strings.Contains(out, "(no events in range)") {
		t.Fatalf("expected empty-range marker:\n%s", out)
	}
}

func TestSetClipboardText(t *testing.T) {
	orig := writeClipboard
	defer func() { writeClipboard = orig }()

	var got string
	writeClipboard = func(s string) error {
		got = s
		return nil
	}
	if err := setClipboardText(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != " " {
		t.Fatalf("empty text should be replaced with a space, got %q", got)
	}

	writeClipboard = func(string) error { return errors.New("no display") }
	err := setClipboardText("report")
	if err == nil || !strings.Contains(err.Error(), "write clipboard: no display") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
