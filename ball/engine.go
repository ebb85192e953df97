package ball

import "github.com/mo-shahab/go-pong/canvas"

// Reset puts the ball back at the centre of c with the base speed and a flat
// trajectory toward directionX (+1 right, -1 left)
func (b *Ball) Reset(c canvas.Canvas, directionX int) {
	b.X, b.Y = c.Center()
	b.Dx = directionX
	b.Dy = 0
	b.Speed = BaseSpeed
}

// ServeDirection picks the serve side from the number of points played:
// even totals serve right, odd totals serve left.
func ServeDirection(totalPoints uint) int {
	if totalPoints%2 == 0 {
		return 1
	}
	return -1
}

// OutLeft reports whether the ball crossed the left goal line
func (b Ball) OutLeft() bool {
	return b.X <= ScoreThreshold
}

// OutRight reports whether the ball crossed the right goal line of c
func (b Ball) OutRight(c canvas.Canvas) bool {
	return b.X >= c.Width-ScoreThreshold
}

// BounceWalls flips the vertical direction when the ball is heading into the
// top or bottom wall and is within Size+Speed of it
func (b *Ball) BounceWalls(c canvas.Canvas) bool {
	margin := Size + b.Speed

	if (b.Y <= margin && b.Dy < 0) || (b.Y >= c.Height-margin && b.Dy > 0) {
		b.Dy = -b.Dy
		return true
	}
	return false
}

// Step is the distance covered per frame along each axis unit of direction.
// Integer division: anything below SpeedDivisor does not move the ball.
func (b Ball) Step() int {
	return b.Speed / SpeedDivisor
}

// Move integrates the ball position for one frame
func (b *Ball) Move(c canvas.Canvas) {
	step := b.Step()

	b.X += b.Dx * step
	b.Y += b.Dy * step

	// keep the ball on the field vertically
	b.Y = canvas.Clamp(b.Y, Size/2, c.Height-Size/2)
}
