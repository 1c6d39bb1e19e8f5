package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBall_HitsWall(t *testing.T) {
	cases := []struct {
		y    float64
		want bool
	}{
		{15, true}, // half the ball size, touching the top
		{16, false},
		{250, false},
		{484, false},
		{485, true},
		{-40, true},
	}
	for _, c := range cases {
		b := Ball{Y: c.y, Size: BallSize}
		if got := b.HitsWall(ArenaHeight); got != c.want {
			t.Fatalf("HitsWall(y=%.0f) = %v, want %v", c.y, got, c.want)
		}
	}
}

func TestBall_ReflectKeepsSpeed(t *testing.T) {
	b := Ball{VX: 3, VY: -4, Size: BallSize}
	b.ReflectY()
	if b.VX != 3 || b.VY != 4 {
		t.Fatalf("expected (3,4), got (%.2f,%.2f)", b.VX, b.VY)
	}
	if math.Abs(b.Speed()-5) > 1e-9 {
		t.Fatalf("reflection changed speed: %.4f", b.Speed())
	}
}

func TestBall_DeflectCentre(t *testing.T) {
	p := newFoot(playerFootX, ArenaHeight)
	b := Ball{X: p.X + 20, Y: p.Y, VX: -5, VY: 0, Size: BallSize}
	b.Deflect(p, 1)

	if math.Abs(b.VX-5.25) > 1e-9 || math.Abs(b.VY) > 1e-9 {
		t.Fatalf("centre hit should send the ball straight back at 5.25, got (%.4f,%.4f)", b.VX, b.VY)
	}
}

func TestBall_DeflectEdgeAngle(t *testing.T) {
	p := newFoot(opponentFootX, ArenaHeight)
	// Struck at the bottom edge of the foot: relativeY = 1.
	b := Ball{X: p.X - 20, Y: p.Y + p.Height/2, VX: 4, VY: 3, Size: BallSize}
	b.Deflect(p, -1)

	speed := 5 * hitSpeedUp
	wantVX := -speed * math.Cos(math.Pi/3)
	wantVY := speed * math.Sin(math.Pi/3)
	if math.Abs(b.VX-wantVX) > 1e-9 || math.Abs(b.VY-wantVY) > 1e-9 {
		t.Fatalf("expected (%.4f,%.4f), got (%.4f,%.4f)", wantVX, wantVY, b.VX, b.VY)
	}
	if math.Abs(b.Speed()-speed) > 1e-9 {
		t.Fatalf("expected speed %.4f, got %.4f", speed, b.Speed())
	}
}

func TestBall_DeflectBeyondEdgeIsNotClamped(t *testing.T) {
	p := newFoot(playerFootX, ArenaHeight)
	// Corner contact: ball centre 40 above the foot centre, relativeY = -4/3.
	b := Ball{X: p.X + 20, Y: p.Y - 40, VX: -5, VY: 0, Size: BallSize}
	b.Deflect(p, 1)

	angle := math.Atan2(b.VY, b.VX)
	want := -4.0 / 3.0 * maxBounceAngle
	if math.Abs(angle-want) > 1e-9 {
		t.Fatalf("expected angle %.4f, got %.4f", want, angle)
	}
	if b.VX <= 0 {
		t.Fatalf("player deflection must send the ball right, VX=%.4f", b.VX)
	}
}

func TestBall_SpeedCompounds(t *testing.T) {
	p := newFoot(playerFootX, ArenaHeight)
	b := Ball{X: p.X + 20, Y: p.Y, VX: -BaseBallSpeed, Size: BallSize}
	for i := 0; i < 10; i++ {
		b.Deflect(p, 1)
	}
	want := BaseBallSpeed * math.Pow(hitSpeedUp, 10)
	if math.Abs(b.Speed()-want) > 1e-9 {
		t.Fatalf("after 10 hits expected speed %.4f, got %.4f", want, b.Speed())
	}
}

func TestBall_Relaunch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		b := newBall(ArenaWidth, ArenaHeight)
		b.X, b.Y, b.VX, b.VY = -12, 3, -30, 40
		b.Relaunch(ArenaWidth, ArenaHeight, dir, rng)

		if b.X != ArenaWidth/2 || b.Y != ArenaHeight/2 {
			t.Fatalf("relaunch should centre the ball, got (%.1f,%.1f)", b.X, b.Y)
		}
		if math.Abs(b.Speed()-BaseBallSpeed) > 1e-9 {
			t.Fatalf("relaunch speed should be %.1f, got %.4f", BaseBallSpeed, b.Speed())
		}
		if b.VX*dir <= 0 {
			t.Fatalf("relaunch dir=%.0f produced VX=%.4f", dir, b.VX)
		}
		if angle := math.Asin(b.VY / b.Speed()); math.Abs(angle) > math.Pi/6+1e-9 {
			t.Fatalf("relaunch angle %.4f outside ±30°", angle)
		}
	}
}

func TestBall_TouchesInclusive(t *testing.T) {
	p := newFoot(playerFootX, ArenaHeight)
	// Ball's left edge exactly on the foot's right edge.
	b := Ball{X: p.X + p.Width/2 + BallSize/2, Y: p.Y, Size: BallSize}
	if !b.Touches(p) {
		t.Fatal("edge contact should count as a touch")
	}
	b.X += 0.01
	if b.Touches(p) {
		t.Fatal("ball just past the edge should not touch")
	}
}
