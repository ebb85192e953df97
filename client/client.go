package client

import (
	"github.com/google/uuid"
	"github.com/mo-shahab/go-pong/paddle"
)

// Team is the side of the field a client plays on
type Team string

const (
	Left  Team = "left"
	Right Team = "right"
)

// Client is a local player sharing the keyboard: the side they control and
// the names of the keys bound to moving their paddle
type Client struct {
	ID   string
	Team Team
	Up   string
	Down string
}

// New creates a client for team with a fresh short id
func New(team Team, up, down string) *Client {
	return &Client{
		ID:   uuid.New().String()[:6],
		Team: team,
		Up:   up,
		Down: down,
	}
}

// Direction reads the client's bindings through held. Holding both keys
// cancels out.
func (c *Client) Direction(held func(key string) bool) paddle.Direction {
	up := held(c.Up)
	down := held(c.Down)

	switch {
	case up && !down:
		return paddle.Up
	case down && !up:
		return paddle.Down
	default:
		return paddle.None
	}
}
