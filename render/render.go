// Package render draws a game snapshot onto any Surface.
package render

import (
	"image/color"

	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/game"
)

var (
	Background = color.Black
	Foreground = color.White
)

// Surface is the set of drawing primitives the scene needs from a graphics backend
type Surface interface {
	Clear(c color.Color)
	DrawLine(x0, y0, x1, y1 int, c color.Color)
	FillRect(r canvas.Rect, c color.Color)
	MeasureText(s string) (w, h int)
	DrawText(s string, r canvas.Rect, c color.Color)
}

// Scene clears dst and draws, in order: the centre line, the score, both
// paddles and the ball
func Scene(dst Surface, snap game.GameStateSnapshot) {
	dst.Clear(Background)

	drawCentreLine(dst, snap.Canvas)
	drawScore(dst, snap)
	drawPlayers(dst, snap)
	drawBall(dst, snap.Ball)
}

func drawCentreLine(dst Surface, c canvas.Canvas) {
	cx, _ := c.Center()
	dst.DrawLine(cx, 0, cx, c.Height, Foreground)
}

func drawScore(dst Surface, snap game.GameStateSnapshot) {
	text := snap.Scores.String()
	w, h := dst.MeasureText(text)
	cx, _ := snap.Canvas.Center()

	dst.DrawText(text, canvas.CenteredRect(cx, h/2, w, h), Foreground)
}

func drawPlayers(dst Surface, snap game.GameStateSnapshot) {
	dst.FillRect(snap.LeftPaddle.Rect(), Foreground)
	dst.FillRect(snap.RightPaddle.Rect(), Foreground)
}

func drawBall(dst Surface, b ball.Ball) {
	dst.FillRect(b.Rect(), Foreground)
}
