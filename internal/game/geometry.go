package game

import "math"

// aabb is an axis-aligned box described by its centre and full extents.
type aabb struct {
	cx, cy float64
	w, h   float64
}

// overlaps reports whether two boxes touch or intersect. Touching edges count,
// so a ball resting exactly against a foot registers a hit.
func (a aabb) overlaps(b aabb) bool {
	return a.cx-a.w/2 <= b.cx+b.w/2 &&
		a.cx+a.w/2 >= b.cx-b.w/2 &&
		a.cy+a.h/2 >= b.cy-b.h/2 &&
		a.cy-a.h/2 <= b.cy+b.h/2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// polar returns the velocity of the given speed at angle radians off
// horizontal, pointing right for dir > 0 and left for dir < 0.
func polar(speed, angle, dir float64) (vx, vy float64) {
	return dir * speed * math.Cos(angle), speed * math.Sin(angle)
}
