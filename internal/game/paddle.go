package game

// Paddle is one foot. X never changes after construction; Y is the centre
// and is kept inside the arena by ClampY.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64 // distance moved on the most recent tick
}

func newFoot(x, arenaH float64) Paddle {
	return Paddle{
		X:      x,
		Y:      arenaH / 2,
		Width:  FootWidth,
		Height: FootHeight,
	}
}

// ClampY keeps the foot fully inside [0, arenaH].
func (p *Paddle) ClampY(arenaH float64) {
	p.Y = clamp(p.Y, p.Height/2, arenaH-p.Height/2)
}

func (p Paddle) bounds() aabb {
	return aabb{cx: p.X, cy: p.Y, w: p.Width, h: p.Height}
}

// FollowPointer eases the foot toward the pointer, covering a fixed fraction
// of the remaining distance each tick.
func FollowPointer(p *Paddle, pointerY, arenaH float64) {
	target := clamp(pointerY, p.Height/2, arenaH-p.Height/2)
	prev := p.Y
	p.Y += (target - p.Y) * pointerSmoothing
	p.ClampY(arenaH)
	p.Speed = abs(p.Y - prev)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
