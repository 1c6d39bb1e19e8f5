package game

import (
	"fmt"
	"strings"
)

// --- Snapshot types ---

// RallyReport captures one rally, from the serve to the point that ended it.
type RallyReport struct {
	Index        int
	StartTick    int
	EndTick      int
	PlayerHits   int
	OpponentHits int
	WallBounces  int
	PeakSpeed    float64
	Scorer       Side
}

// Ticks is the rally length.
func (rr RallyReport) Ticks() int {
	return rr.EndTick - rr.StartTick
}

// Hits is the number of foot contacts in the rally.
func (rr RallyReport) Hits() int {
	return rr.PlayerHits + rr.OpponentHits
}

// MatchTotals aggregates every finished rally.
type MatchTotals struct {
	Rallies        int
	PlayerHits     int
	OpponentHits   int
	WallBounces    int
	LongestRally   int // ticks
	MostHits       int // in a single rally
	PeakSpeed      float64
	AvgRallyTicks  float64
	PlayerPoints   int
	OpponentPoints int
}

// --- Reporter ---

// MatchReporter turns the event stream of a Session into per-rally stats.
// It is also a ScoreObserver so a reset starts a fresh report.
type MatchReporter struct {
	rallies  []RallyReport
	current  RallyReport
	match    Match
	lastTick int
}

// NewMatchReporter creates an empty reporter.
func NewMatchReporter() *MatchReporter {
	return &MatchReporter{}
}

// Consume folds one tick's events into the report.
func (r *MatchReporter) Consume(events []Event) {
	for _, e := range events {
		r.lastTick = e.Tick
		switch e.Kind {
		case EventWallBounce:
			r.current.WallBounces++
		case EventPaddleHit:
			if e.Side == SidePlayer {
				r.current.PlayerHits++
			} else {
				r.current.OpponentHits++
			}
			if e.Speed > r.current.PeakSpeed {
				r.current.PeakSpeed = e.Speed
			}
		case EventPoint:
			r.current.EndTick = e.Tick
			r.current.Scorer = e.Side
			r.current.Index = len(r.rallies) + 1
			r.rallies = append(r.rallies, r.current)
			r.current = RallyReport{StartTick: e.Tick}
			r.match = e.Match
		case EventGameOver:
			r.match = e.Match
		}
	}
}

// ScoreChanged implements ScoreObserver. A zeroed, paused score means the
// session was reset.
func (r *MatchReporter) ScoreChanged(m Match) {
	if m == (Match{Phase: PhasePaused}) {
		r.rallies = nil
		r.current = RallyReport{StartTick: r.lastTick}
	}
	r.match = m
}

// GameOver implements ScoreObserver.
func (r *MatchReporter) GameOver(_ Side, m Match) {
	r.match = m
}

// Rallies returns the finished rallies, oldest first.
func (r *MatchReporter) Rallies() []RallyReport {
	out := make([]RallyReport, len(r.rallies))
	copy(out, r.rallies)
	return out
}

// Totals aggregates the finished rallies.
func (r *MatchReporter) Totals() MatchTotals {
	var t MatchTotals
	sumTicks := 0
	for _, rr := range r.rallies {
		t.Rallies++
		t.PlayerHits += rr.PlayerHits
		t.OpponentHits += rr.OpponentHits
		t.WallBounces += rr.WallBounces
		sumTicks += rr.Ticks()
		if rr.Ticks() > t.LongestRally {
			t.LongestRally = rr.Ticks()
		}
		if rr.Hits() > t.MostHits {
			t.MostHits = rr.Hits()
		}
		if rr.PeakSpeed > t.PeakSpeed {
			t.PeakSpeed = rr.PeakSpeed
		}
		switch rr.Scorer {
		case SidePlayer:
			t.PlayerPoints++
		case SideOpponent:
			t.OpponentPoints++
		}
	}
	if t.Rallies > 0 {
		t.AvgRallyTicks = float64(sumTicks) / float64(t.Rallies)
	}
	return t
}

// Match returns the last score the reporter saw.
func (r *MatchReporter) Match() Match {
	return r.match
}

// Format renders the report as plain text, suitable for the clipboard.
func (r *MatchReporter) Format() string {
	var sb strings.Builder
	m := r.match
	t := r.Totals()

	fmt.Fprintf(&sb, "=== Match Report (T=%d) ===\n", r.lastTick)
	fmt.Fprintf(&sb, "%s %d - %d %s  phase=%s\n",
		playerName, m.PlayerScore, m.OpponentScore, opponentName, m.Phase)
	if m.Winner != SideNone {
		fmt.Fprintf(&sb, "winner: %s (%s)\n", m.Winner.Name(), m.Winner)
	}
	fmt.Fprintf(&sb, "rallies=%d  avg_ticks=%.1f  longest=%d  most_hits=%d\n",
		t.Rallies, t.AvgRallyTicks, t.LongestRally, t.MostHits)
	fmt.Fprintf(&sb, "hits: player=%d opponent=%d  wall_bounces=%d  peak_speed=%.2f\n",
		t.PlayerHits, t.OpponentHits, t.WallBounces, t.PeakSpeed)

	if len(r.rallies) > 0 {
		sb.WriteString("rallies:\n")
		for _, rr := range r.rallies {
			fmt.Fprintf(&sb, "  #%-2d T=%d..%d  ticks=%-4d hits=%d/%d  walls=%-2d peak=%.2f  -> %s\n",
				rr.Index, rr.StartTick, rr.EndTick, rr.Ticks(),
				rr.PlayerHits, rr.OpponentHits, rr.WallBounces, rr.PeakSpeed, rr.Scorer)
		}
	}
	return sb.String()
}
