package game

import (
	"fmt"
	"strings"
)

// matchDebugReport renders the rally report, a log summary and the raw log
// of the last lastTicks ticks.
func matchDebugReport(rep *MatchReporter, sl *SimLog, tick int, m Match, lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	fromTick := tick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Foot Pong debug report ---\n")
	fmt.Fprintf(&b, "tick_range=[%d..%d] ticks=%d\n\n", fromTick, tick, tick-fromTick+1)
	b.WriteString(rep.Format())
	b.WriteByte('\n')
	b.WriteString(sl.Summary(tick, m))

	recent := sl.FormatRange(fromTick, tick)
	b.WriteString("\nlog:\n")
	if recent == "" {
		b.WriteString("(no events in range)\n")
	} else {
		b.WriteString(recent)
	}
	return b.String()
}
