package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/paddle"
	"github.com/mo-shahab/go-pong/scores"
)

// Input is everything the players asked for during one frame
type Input struct {
	Left  paddle.Direction
	Right paddle.Direction
	Reset bool
}

// GameState holds the current state of a game session
type GameState struct {
	Canvas      canvas.Canvas
	Ball        ball.Ball
	LeftPaddle  paddle.Paddle
	RightPaddle paddle.Paddle
	Scores      scores.Scores
	Frame       uint64
}

// GameStateSnapshot represents a point-in-time copy of the game state
type GameStateSnapshot GameState

// EventHandler is notified about the notable things that happen during a step
type EventHandler interface {
	OnScoreUpdate(s scores.Scores, whoScored client.Team)
	OnPaddleHit(team client.Team, b ball.Ball)
	OnBallReset(b ball.Ball)
}

type nopEventHandler struct{}

func (nopEventHandler) OnScoreUpdate(scores.Scores, client.Team) {}
func (nopEventHandler) OnPaddleHit(client.Team, ball.Ball) {}
func (nopEventHandler) OnBallReset(ball.Ball) {}
