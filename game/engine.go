package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/paddle"
)

// Engine owns the game state and advances it one frame at a time.
// It is driven from a single goroutine.
type Engine struct {
	state  GameState
	events EventHandler
}

// NewEngine creates an engine with both paddles centred and the ball served
// toward the right. A nil handler discards events.
func NewEngine(c canvas.Canvas, events EventHandler) *Engine {
	if events == nil {
		events = nopEventHandler{}
	}

	return &Engine{
		state: GameState{
			Canvas:      c,
			Ball:        ball.New(c),
			LeftPaddle:  paddle.NewLeft(c),
			RightPaddle: paddle.NewRight(c),
		},
		events: events,
	}
}

// Step runs one frame: paddles first, then the ball
func (ge *Engine) Step(in Input) {
	ge.state.Frame++

	ge.state.LeftPaddle.Move(in.Left, ge.state.Canvas)
	ge.state.RightPaddle.Move(in.Right, ge.state.Canvas)

	if in.Reset {
		ge.Reset()
		return
	}

	ge.updateBall()
}

// Reset serves a new ball without touching the scores
func (ge *Engine) Reset() {
	ge.resetBall()
}

// Snapshot returns a copy of the current state
func (ge *Engine) Snapshot() GameStateSnapshot {
	return GameStateSnapshot(ge.state)
}

// updateBall handles ball physics and collision detection
func (ge *Engine) updateBall() {
	if ge.checkBallOutOfBounds() {
		return
	}

	b := &ge.state.Ball
	b.BounceWalls(ge.state.Canvas)
	ge.handlePaddleCollision()
	b.Move(ge.state.Canvas)
}

// handlePaddleCollision deflects the ball off whichever paddle it touches
func (ge *Engine) handlePaddleCollision() {
	b := &ge.state.Ball

	if ge.state.LeftPaddle.Deflect(b, 1) {
		ge.events.OnPaddleHit(client.Left, *b)
	}

	if ge.state.RightPaddle.Deflect(b, -1) {
		ge.events.OnPaddleHit(client.Right, *b)
	}
}

// checkBallOutOfBounds handles scoring when the ball reaches a goal line
func (ge *Engine) checkBallOutOfBounds() bool {
	var whoScored client.Team

	switch {
	case ge.state.Ball.OutLeft():
		// ball reached the left wall, right player scores
		ge.state.Scores.ScoreRight()
		whoScored = client.Right
	case ge.state.Ball.OutRight(ge.state.Canvas):
		ge.state.Scores.ScoreLeft()
		whoScored = client.Left
	default:
		return false
	}

	ge.events.OnScoreUpdate(ge.state.Scores, whoScored)
	ge.resetBall()

	return true
}

// resetBall serves from the centre toward the side picked by the score parity
func (ge *Engine) resetBall() {
	ge.state.Ball.Reset(ge.state.Canvas, ball.ServeDirection(ge.state.Scores.Total()))
	ge.events.OnBallReset(ge.state.Ball)
}
