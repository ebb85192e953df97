package paddle

import "github.com/mo-shahab/go-pong/canvas"

// paddle constants
const (
	Width  = 16
	Height = 64
	Step   = 8
	Inset  = 32
)

// Direction is the movement requested for a paddle this frame
type Direction int

const (
	None Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Paddle is the centre of a paddle. X never changes after creation.
type Paddle struct {
	X, Y int
}

// NewLeft places the left paddle Inset pixels from the left edge, vertically centred
func NewLeft(c canvas.Canvas) Paddle {
	return Paddle{X: Inset, Y: c.Height / 2}
}

// NewRight places the right paddle Inset pixels from the right edge, vertically centred
func NewRight(c canvas.Canvas) Paddle {
	return Paddle{X: c.Width - Inset, Y: c.Height / 2}
}

// Margin is the closest the paddle centre may get to the top or bottom edge
func Margin() int {
	return Height / 2
}

// Rect is the paddle's bounding box
func (p Paddle) Rect() canvas.Rect {
	return canvas.CenteredRect(p.X, p.Y, Width, Height)
}
