package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/scores"
	log "github.com/sirupsen/logrus"
)

// LogEventHandler reports game events to a logrus entry
type LogEventHandler struct {
	entry *log.Entry
}

// NewLogEventHandler logs events through entry
func NewLogEventHandler(entry *log.Entry) *LogEventHandler {
	return &LogEventHandler{entry: entry}
}

func (h *LogEventHandler) OnScoreUpdate(s scores.Scores, whoScored client.Team) {
	h.entry.WithFields(log.Fields{
		"scored": whoScored,
		"left":   s.LeftScores,
		"right":  s.RightScores,
	}).Infof("%s player scored! Score: %d-%d", whoScored, s.LeftScores, s.RightScores)
}

func (h *LogEventHandler) OnPaddleHit(team client.Team, b ball.Ball) {
	h.entry.WithFields(log.Fields{
		"team":  team,
		"speed": b.Speed,
		"dy":    b.Dy,
	}).Debug("paddle hit")
}

func (h *LogEventHandler) OnBallReset(b ball.Ball) {
	h.entry.WithField("dx", b.Dx).Info("ball served")
}
