package game

import (
	"strings"
	"testing"
)

func TestSimLog_AddAndFilter(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P", "ball", "paddle_hit", "speed=5.250", 5.25)
	sl.Add(2, "--", "ball", "wall_bounce", "(400.0,14.0)", 5.25)
	sl.Add(3, "O", "ball", "paddle_hit", "speed=5.513", 5.5125)
	sl.Add(4, "O", "score", "point", "0-1", 1)

	if n := len(sl.Entries()); n != 4 {
		t.Fatalf("expected 4 entries, got %d", n)
	}
	if n := sl.CountCategory("ball", "paddle_hit"); n != 2 {
		t.Fatalf("expected 2 paddle hits, got %d", n)
	}
	if n := len(sl.Filter("ball", "")); n != 3 {
		t.Fatalf("expected 3 ball entries, got %d", n)
	}
	if n := len(sl.FilterSide("O")); n != 2 {
		t.Fatalf("expected 2 opponent entries, got %d", n)
	}
	if n := len(sl.FilterTickRange(2, 3)); n != 2 {
		t.Fatalf("expected 2 entries in [2..3], got %d", n)
	}
	last, ok := sl.LastOf("ball", "paddle_hit")
	if !ok || last.Tick != 3 {
		t.Fatalf("expected last hit at tick 3, got %+v (ok=%v)", last, ok)
	}
	if _, ok := sl.LastOf("score", "game_over"); ok {
		t.Fatal("no game_over was recorded")
	}
	if !sl.HasEntry("score", "point", "0-1") || sl.HasEntry("score", "point", "1-0") {
		t.Fatal("HasEntry substring match is wrong")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "--", "fx", "tone", "300Hz", 300)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entries should be dropped when verbose is off")
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "--", "fx", "tone", "300Hz", 300)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entries should be kept when verbose is on")
	}
}

func TestSimLog_Format(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(42, "P", "ball", "paddle_hit", "speed=5.250", 5.25)
	out := sl.Format()
	if !strings.HasPrefix(out, "[T=042] P") || !strings.Contains(out, "paddle_hit") {
		t.Fatalf("unexpected format: %q", out)
	}
	if sl.FormatRange(0, 10) != "" {
		t.Fatal("FormatRange outside the log should be empty")
	}
}

func TestSimLog_SessionRecordsEvents(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithBall(ArenaWidth/2, 20, 0, -6))
	ts.Step()

	if !ts.SimLog.HasEntry("control", "resume", "running") {
		t.Fatal("the resume command should be logged")
	}
	if ts.SimLog.CountCategory("ball", "wall_bounce") != 1 {
		t.Fatal("wall bounce should be logged")
	}
	if ts.SimLog.CountCategory("fx", "tone") != 1 || ts.SimLog.CountCategory("fx", "burst") != 1 {
		t.Fatal("verbose effects should be logged")
	}
	if ts.SimLog.CountCategory("move", "position") != 2 {
		t.Fatal("verbose foot positions should be logged")
	}
}

func TestSimLog_Summary(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(5, "P", "ball", "paddle_hit", "speed=5.250", 5.25)
	sl.Add(9, "O", "ball", "paddle_hit", "speed=5.600", 5.6)
	sl.Add(10, "--", "control", "pause", " paused", 0)

	out := sl.Summary(10, Match{PlayerScore: 7, OpponentScore: 3, Phase: PhaseOver, Winner: SidePlayer})
	for _, want := range []string{
		"Eri Johnson 7 - 3 Evando Mesquita",
		"Winner: player",
		"player=1  opponent=1  peak_speed=5.60",
		"Controls: [pause]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
