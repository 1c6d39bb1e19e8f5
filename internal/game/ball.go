package game

import (
	"math"
	"math/rand"
)

// Ball is a square of side Size centred on (X, Y). BaseSpeed is the launch
// speed every rally starts from.
type Ball struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	BaseSpeed float64
}

func newBall(arenaW, arenaH float64) Ball {
	return Ball{
		X:         arenaW / 2,
		Y:         arenaH / 2,
		Size:      BallSize,
		BaseSpeed: BaseBallSpeed,
	}
}

// Speed is the magnitude of the velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Integrate advances the ball by one fixed step.
func (b *Ball) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// HitsWall reports whether the ball's vertical extent reaches the top or
// bottom edge.
func (b Ball) HitsWall(arenaH float64) bool {
	return b.Y <= b.Size/2 || b.Y >= arenaH-b.Size/2
}

// ReflectY mirrors the vertical velocity. Speed is unchanged.
func (b *Ball) ReflectY() {
	b.VY *= -1
}

// Touches reports whether the ball overlaps the foot.
func (b Ball) Touches(p Paddle) bool {
	ball := aabb{cx: b.X, cy: b.Y, w: b.Size, h: b.Size}
	return ball.overlaps(p.bounds())
}

// Deflect sends the ball back off a foot. The exit angle depends on where it
// struck relative to the foot's centre (up to ±60° at the edges, more on the
// corners since relativeY is not clamped) and speed grows by 5%. dir is +1 to
// send the ball right and -1 to send it left.
func (b *Ball) Deflect(p Paddle, dir float64) {
	relativeY := (b.Y - p.Y) / (p.Height / 2)
	angle := relativeY * maxBounceAngle
	speed := b.Speed() * hitSpeedUp
	b.VX, b.VY = polar(speed, angle, dir)
}

// Relaunch re-centres the ball and serves it at BaseSpeed in direction dir,
// at a random angle within the launch cone.
func (b *Ball) Relaunch(arenaW, arenaH, dir float64, rng *rand.Rand) {
	b.X = arenaW / 2
	b.Y = arenaH / 2
	angle := (rng.Float64() - 0.5) * launchCone
	b.VX, b.VY = polar(b.BaseSpeed, angle, dir)
}
