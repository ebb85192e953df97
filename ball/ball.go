package ball

import "github.com/mo-shahab/go-pong/canvas"

// ball constants
const (
	Size           = 8
	BaseSpeed      = 4
	SpeedDivisor   = 4
	ScoreThreshold = Size
)

// Ball is the ball's centre position, its direction of travel and the speed
// accumulated over the current rally
type Ball struct {
	X, Y   int
	Dx, Dy int
	Speed  int
}

// New returns a ball served toward the right from the centre of c
func New(c canvas.Canvas) Ball {
	var b Ball
	b.Reset(c, 1)
	return b
}

// Rect is the ball's bounding box
func (b Ball) Rect() canvas.Rect {
	return canvas.CenteredRect(b.X, b.Y, Size, Size)
}
