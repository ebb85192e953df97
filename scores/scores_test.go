package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoring(t *testing.T) {
	var s Scores

	s.ScoreLeft()
	s.ScoreRight()
	s.ScoreRight()

	assert.Equal(t, uint(1), s.LeftScores)
	assert.Equal(t, uint(2), s.RightScores)
	assert.Equal(t, uint(3), s.Total())
}

func TestString(t *testing.T) {
	tests := []struct {
		scores   Scores
		expected string
	}{
		{Scores{}, "0   0"},
		{Scores{LeftScores: 3, RightScores: 11}, "3   11"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.scores.String())
	}
}
