package canvas

import "golang.org/x/exp/constraints"

// Canvas is the logical coordinate space the game is simulated in
type Canvas struct {
	Width  int
	Height int
}

// Playfield is the fixed 512x512 field every session plays on
var Playfield = Canvas{
	Width:  512,
	Height: 512,
}

// Center returns the centre point of the canvas
func (c Canvas) Center() (int, int) {
	return c.Width / 2, c.Height / 2
}

// Rect is an axis-aligned box with its origin at the top-left corner
type Rect struct {
	X, Y int
	W, H int
}

// CenteredRect builds a w*h box centred on (cx, cy)
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{
		X: cx - w/2,
		Y: cy - h/2,
		W: w,
		H: h,
	}
}

// Intersects reports whether the two boxes overlap. Boxes that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Within reports whether lo <= v <= hi
func Within[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
