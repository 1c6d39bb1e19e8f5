package game

import (
	"math"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.SimLog.Summary(ts.Session.Tick(), ts.Session.Match()))
	if ts.Reporter != nil {
		t.Log(ts.Reporter.Format())
	}
}

// --- Scenario: Ball leaves on the left ---

func TestScenario_LeftExit(t *testing.T) {
	t.Log("=== TestScenario_LeftExit ===")
	t.Log("--- Setup: ball at the left edge moving left, player foot out of the way ---")

	ts := NewTestSim(
		WithPilot(FixedPointer(0)),
		WithFeet(FootHeight/2, ArenaHeight/2),
		WithBall(0, ArenaHeight/2, -5, 0),
	)
	ts.Step()
	dumpLog(t, ts)

	m := ts.Session.Match()
	if m.OpponentScore != 1 || m.PlayerScore != 0 {
		t.Fatalf("expected 0-1, got %d-%d", m.PlayerScore, m.OpponentScore)
	}
	if m.Phase != PhaseRunning {
		t.Fatalf("match should keep running, got %s", m.Phase)
	}
	b := ts.Session.Snapshot().Ball
	if b.X != ArenaWidth/2 || b.Y != ArenaHeight/2 {
		t.Fatalf("ball should be re-centred, got (%.1f,%.1f)", b.X, b.Y)
	}
	if b.VX <= 0 {
		t.Fatalf("ball should be served toward the opponent, VX=%.2f", b.VX)
	}
	if math.Abs(b.Speed()-BaseBallSpeed) > 1e-9 {
		t.Fatalf("serve speed should be %.0f, got %.4f", BaseBallSpeed, b.Speed())
	}
	if !ts.SimLog.HasEntry("score", "point", "0-1") {
		t.Fatal("point should be logged")
	}
}

// --- Scenario: Ball leaves on the right ---

func TestScenario_RightExit(t *testing.T) {
	t.Log("=== TestScenario_RightExit ===")

	ts := NewTestSim(WithBall(ArenaWidth, ArenaHeight/2, 5, 0))
	ts.Step()
	dumpLog(t, ts)

	m := ts.Session.Match()
	if m.PlayerScore != 1 || m.OpponentScore != 0 {
		t.Fatalf("expected 1-0, got %d-%d", m.PlayerScore, m.OpponentScore)
	}
	if ts.Session.Snapshot().Ball.VX >= 0 {
		t.Fatal("ball should be served toward the player")
	}
}

// --- Scenario: Rally speeds up ---

func TestScenario_RallySpeedsUp(t *testing.T) {
	t.Log("=== TestScenario_RallySpeedsUp ===")
	t.Log("--- Setup: straight rally down the middle, both feet centred ---")

	ts := NewTestSim(
		WithDifficulty(5),
		WithBall(ArenaWidth/2, ArenaHeight/2, -BaseBallSpeed, 0),
	)
	hits := 0
	tick := ts.RunUntil(func(ts *TestSim) bool {
		hits = ts.CountEvents(EventPaddleHit)
		return hits >= 4
	}, 2000)
	dumpSummary(t, ts)

	if tick < 0 {
		t.Fatalf("expected 4 hits in a straight rally, got %d", hits)
	}
	want := BaseBallSpeed * math.Pow(hitSpeedUp, 4)
	if got := ts.Session.Snapshot().Ball.Speed(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected speed %.4f after 4 hits, got %.4f", want, got)
	}
	if ts.Session.Match().PlayerScore+ts.Session.Match().OpponentScore != 0 {
		t.Fatal("nobody should have scored yet")
	}
}

// --- Scenario: Full match ---

func TestScenario_FullMatch(t *testing.T) {
	t.Log("=== TestScenario_FullMatch ===")
	t.Log("--- Setup: autopilot vs difficulty 1, play to seven ---")

	ts := NewTestSim(WithSeed(12), WithDifficulty(1), WithPilot(Autopilot(3)))
	tick := ts.RunUntilOver(200000)
	dumpSummary(t, ts)

	if tick < 0 {
		t.Fatal("match did not finish")
	}
	m := ts.Session.Match()
	if m.Winner == SideNone || m.Score(m.Winner) != WinningScore {
		t.Fatalf("winner should hold %d points, got %+v", WinningScore, m)
	}
	if ts.CountEvents(EventGameOver) != 1 {
		t.Fatalf("expected exactly one game_over, got %d", ts.CountEvents(EventGameOver))
	}

	totals := ts.Reporter.Totals()
	if totals.PlayerPoints != m.PlayerScore || totals.OpponentPoints != m.OpponentScore {
		t.Fatalf("report %d-%d disagrees with match %d-%d",
			totals.PlayerPoints, totals.OpponentPoints, m.PlayerScore, m.OpponentScore)
	}
	if totals.Rallies != m.PlayerScore+m.OpponentScore {
		t.Fatalf("expected one rally per point, got %d", totals.Rallies)
	}
	if ts.Reporter.Match() != m {
		t.Fatal("reporter should track the final score")
	}
}
