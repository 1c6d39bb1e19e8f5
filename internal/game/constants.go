package game

import (
	"image/color"
	"math"
	"time"
)

// Arena dimensions in logical units. The window is laid out around these.
const (
	ArenaWidth  = 800.0
	ArenaHeight = 500.0
)

// Foot (paddle) geometry. X is the centre line used for collision.
const (
	FootWidth  = 40.0
	FootHeight = 60.0
	footInset  = 30.0

	playerFootX   = footInset
	opponentFootX = ArenaWidth - footInset - FootWidth
)

// Ball and rally tuning.
const (
	BallSize      = 30.0
	BaseBallSpeed = 5.0
	WinningScore  = 7

	hitSpeedUp     = 1.05        // compounding per paddle hit
	maxBounceAngle = math.Pi / 3 // at relativeY = ±1
	launchCone     = math.Pi / 3 // full width of the relaunch cone (±30°)
)

// Opponent controller tuning.
const (
	aiLookaheadTicks = 10.0
	aiDeadZone       = 10.0
	aiBaseSpeed      = 2.0
	aiSpeedPerLevel  = 0.5
)

// Difficulty range accepted by SetDifficulty.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 3
)

// pointerSmoothing is the fraction of the remaining distance the player foot
// covers each tick.
const pointerSmoothing = 0.2

// Particle tuning.
const (
	burstSize     = 8
	particleSpeed = 3.0
	particleDecay = 0.02
	// lifeEpsilon absorbs float drift so 50 decrements of 0.02 reach zero.
	lifeEpsilon = 1e-9
)

// Tones played on collisions.
const (
	wallToneHz   = 300.0
	paddleToneHz = 400.0
	toneDuration = 100 * time.Millisecond
)

var (
	wallBurstColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff} // gold
	paddleBurstColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff} // sky blue
)

// Display names shown on the scoreboard.
const (
	playerName   = "Eri Johnson"
	opponentName = "Evando Mesquita"
)
