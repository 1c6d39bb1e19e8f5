package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/Garsondee/Foot-Pong/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	winner        game.Side
	playerScore   int
	opponentScore int
	ticks         int // -1 when the match did not finish

	totals         game.MatchTotals
	wallBounces    int
	firstHitTick   int
	firstPointTick int
	controls       int
}

func main() {
	var runs int
	var maxTicks int
	var difficulty int
	var seedBase int64
	var seedStep int64
	var playerLag float64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&maxTicks, "max-ticks", 216000, "tick limit per match")
	flag.IntVar(&difficulty, "difficulty", game.DefaultDifficulty, "opponent difficulty 1-5")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&playerLag, "player-lag", 3, "autopilot lag in ticks of ball motion")
	flag.BoolVar(&verbose, "v", false, "print each match report")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -max-ticks must be > 0")
		return
	}
	if difficulty < game.MinDifficulty || difficulty > game.MaxDifficulty {
		fmt.Printf("error: -difficulty must be in %d..%d\n", game.MinDifficulty, game.MaxDifficulty)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d max_ticks=%d difficulty=%d seed_base=%d seed_step=%d player_lag=%.1f\n\n",
		runs, maxTicks, difficulty, seedBase, seedStep, playerLag)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := game.NewTestSim(
			game.WithSeed(seed),
			game.WithDifficulty(difficulty),
			game.WithPilot(game.Autopilot(playerLag)),
		)
		stats := runMatch(ts, i+1, seed, maxTicks)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(ts.Reporter.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

func runMatch(ts *game.TestSim, runIndex int, seed int64, maxTicks int) runStats {
	ticks := ts.RunUntilOver(maxTicks)
	m := ts.Session.Match()
	entries := ts.SimLog.Entries()

	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		winner:         m.Winner,
		playerScore:    m.PlayerScore,
		opponentScore:  m.OpponentScore,
		ticks:          ticks,
		totals:         ts.Reporter.Totals(),
		wallBounces:    ts.SimLog.CountCategory("ball", "wall_bounce"),
		firstHitTick:   firstTick(entries, "ball", "paddle_hit"),
		firstPointTick: firstTick(entries, "score", "point"),
		controls:       ts.SimLog.CountCategory("control", ""),
	}
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.ticks < 0 {
		fmt.Printf("result: unfinished %d-%d\n", rs.playerScore, rs.opponentScore)
	} else {
		fmt.Printf("result: %s wins %d-%d in %d ticks (%s)\n",
			rs.winner, rs.playerScore, rs.opponentScore, rs.ticks, secondsString(rs.ticks))
	}
	fmt.Printf("rallies=%d avg_ticks=%.1f longest=%d most_hits=%d\n",
		rs.totals.Rallies, rs.totals.AvgRallyTicks, rs.totals.LongestRally, rs.totals.MostHits)
	fmt.Printf("hits: player=%d opponent=%d wall_bounces=%d peak_speed=%.2f\n",
		rs.totals.PlayerHits, rs.totals.OpponentHits, rs.wallBounces, rs.totals.PeakSpeed)
	fmt.Printf("markers: first_hit=%d first_point=%d controls=%d\n\n",
		rs.firstHitTick, rs.firstPointTick, rs.controls)
}

// aggregate is the cross-run summary.
type aggregate struct {
	runs         int
	finished     int
	playerWins   int
	opponentWins int

	avgTicks       float64
	avgRallies     float64
	avgRallyTicks  float64
	peakSpeed      float64
	longestRally   int
	medianMatchLen int
}

func summarize(all []runStats) aggregate {
	a := aggregate{runs: len(all)}
	var lens []int
	rallies := 0
	rallyTickSum := 0.0
	for _, rs := range all {
		rallies += rs.totals.Rallies
		rallyTickSum += rs.totals.AvgRallyTicks * float64(rs.totals.Rallies)
		if rs.totals.PeakSpeed > a.peakSpeed {
			a.peakSpeed = rs.totals.PeakSpeed
		}
		if rs.totals.LongestRally > a.longestRally {
			a.longestRally = rs.totals.LongestRally
		}
		if rs.ticks < 0 {
			continue
		}
		a.finished++
		lens = append(lens, rs.ticks)
		switch rs.winner {
		case game.SidePlayer:
			a.playerWins++
		case game.SideOpponent:
			a.opponentWins++
		}
	}
	a.avgTicks = avgInts(lens)
	a.avgRallies = avg(rallies, len(all))
	if rallies > 0 {
		a.avgRallyTicks = rallyTickSum / float64(rallies)
	}
	a.medianMatchLen = median(lens)
	return a
}

func printAggregate(all []runStats) {
	a := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d finished=%d player_wins=%d opponent_wins=%d player_win_rate=%s\n",
		a.runs, a.finished, a.playerWins, a.opponentWins, percentString(a.playerWins, a.finished))
	fmt.Printf("match_ticks: avg=%.1f median=%d\n", a.avgTicks, a.medianMatchLen)
	fmt.Printf("rallies_per_match=%.1f avg_rally_ticks=%.1f longest_rally=%d peak_speed=%.2f\n",
		a.avgRallies, a.avgRallyTicks, a.longestRally, a.peakSpeed)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgInts(vals []int) float64 {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return avg(sum, len(vals))
}

func median(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}

func percentString(n, of int) string {
	if of <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(n)/float64(of)*100)
}

// secondsString converts ticks to wall-clock time at 60 ticks per second.
func secondsString(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/60)
}
