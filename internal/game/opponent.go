package game

// OpponentSpeed is the per-tick vertical speed cap of the computer foot:
// 2.5 at difficulty 1 up to 4.5 at difficulty 5.
func OpponentSpeed(difficulty int) float64 {
	return aiBaseSpeed + float64(difficulty)*aiSpeedPerLevel
}

// TrackBall moves the computer foot toward where the ball will be in a few
// ticks. It only reacts while the ball is in the opponent's half and holds
// still inside a small dead-zone around the prediction, so slow settings
// can be beaten.
func TrackBall(p *Paddle, b Ball, arenaW, arenaH float64, difficulty int) {
	prev := p.Y
	if b.X > arenaW/2 {
		predicted := b.Y + b.VY*aiLookaheadTicks
		step := OpponentSpeed(difficulty)
		switch {
		case predicted > p.Y+aiDeadZone:
			p.Y += step
		case predicted < p.Y-aiDeadZone:
			p.Y -= step
		}
	}
	p.ClampY(arenaH)
	p.Speed = abs(p.Y - prev)
}
