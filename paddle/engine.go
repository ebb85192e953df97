package paddle

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
)

// DeflectDivisor scales the distance between the ball and paddle centres
// into the vertical direction of the return
const DeflectDivisor = 8

// Move shifts the paddle one Step in dir. The move is only applied when the
// new centre stays within [Margin, c.Height-Margin]; otherwise the paddle
// stays where it is and Move returns false.
func (p *Paddle) Move(dir Direction, c canvas.Canvas) bool {
	var target int

	switch dir {
	case Up:
		target = p.Y - Step
	case Down:
		target = p.Y + Step
	default:
		return false
	}

	if !canvas.Within(target, Margin(), c.Height-Margin()) {
		return false
	}

	p.Y = target
	return true
}

// Deflect bounces b off the paddle when their boxes overlap and the ball is
// travelling toward the paddle. away is the horizontal direction pointing
// away from the paddle: +1 for the left paddle, -1 for the right one.
//
// The return angle follows where the ball struck: the further from the
// paddle centre, the steeper the return. Every contact adds one to the
// ball speed.
func (p Paddle) Deflect(b *ball.Ball, away int) bool {
	if b.Dx*away >= 0 {
		return false
	}

	if !b.Rect().Intersects(p.Rect()) {
		return false
	}

	b.Dx = away
	b.Dy = (b.Y - p.Y) / DeflectDivisor
	b.Speed++

	return true
}
