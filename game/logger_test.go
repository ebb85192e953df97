package game

import (
	"testing"

	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/scores"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEventHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	h := NewLogEventHandler(logger.WithField("room", "abc123"))

	h.OnScoreUpdate(scores.Scores{LeftScores: 2, RightScores: 5}, client.Right)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "right player scored! Score: 2-5", entry.Message)
	assert.Equal(t, "abc123", entry.Data["room"])
	assert.Equal(t, client.Right, entry.Data["scored"])

	h.OnPaddleHit(client.Left, ball.Ball{Speed: 9, Dy: -2})
	entry = hook.LastEntry()
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, 9, entry.Data["speed"])

	h.OnBallReset(ball.Ball{Dx: -1})
	entry = hook.LastEntry()
	assert.Equal(t, "ball served", entry.Message)
	assert.Equal(t, -1, entry.Data["dx"])

	assert.Len(t, hook.AllEntries(), 3)
}

func TestEngineLogsThroughHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ge := NewEngine(canvas.Playfield, NewLogEventHandler(log.NewEntry(logger)))
	ge.state.Ball = ball.Ball{X: 2, Y: 256, Dx: -1, Speed: 4}

	ge.Step(Input{})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "scored")
	assert.Equal(t, "ball served", entries[1].Message)
}
