package game

import (
	"fmt"
	"image/color"
	"time"
)

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota // ball reflected off top or bottom
	EventPaddleHit                   // ball deflected by a foot
	EventPoint                       // a side scored and the ball was relaunched
	EventGameOver                    // a side reached WinningScore
	EventTone                        // a tone was requested
	EventBurst                       // a particle burst was spawned
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventPoint:
		return "point"
	case EventGameOver:
		return "game_over"
	case EventTone:
		return "tone"
	case EventBurst:
		return "burst"
	default:
		return "unknown"
	}
}

// Event is one side effect of a tick. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind EventKind
	Tick int
	Side Side

	X, Y  float64 // contact point or burst centre
	Speed float64 // ball speed after a hit

	FreqHz   float64
	Duration time.Duration
	Color    color.RGBA

	Match Match // score after a point or game over
}

func (e Event) String() string {
	switch e.Kind {
	case EventWallBounce:
		return fmt.Sprintf("wall bounce at (%.0f,%.0f)", e.X, e.Y)
	case EventPaddleHit:
		return fmt.Sprintf("%s hit, speed %.2f", e.Side, e.Speed)
	case EventPoint:
		return fmt.Sprintf("%s scores %d-%d", e.Side, e.Match.PlayerScore, e.Match.OpponentScore)
	case EventGameOver:
		return fmt.Sprintf("%s wins %d-%d", e.Side, e.Match.PlayerScore, e.Match.OpponentScore)
	case EventTone:
		return fmt.Sprintf("tone %.0fHz %s", e.FreqHz, e.Duration)
	case EventBurst:
		return fmt.Sprintf("burst at (%.0f,%.0f)", e.X, e.Y)
	default:
		return "unknown event"
	}
}
