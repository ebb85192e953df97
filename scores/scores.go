package scores

import "fmt"

// Scores holds the points of both players for the current session.
// Counters only ever go up.
type Scores struct {
	LeftScores  uint
	RightScores uint
}

// ScoreLeft awards a point to the left player
func (s *Scores) ScoreLeft() {
	s.LeftScores++
}

// ScoreRight awards a point to the right player
func (s *Scores) ScoreRight() {
	s.RightScores++
}

// Total is the number of points played so far
func (s Scores) Total() uint {
	return s.LeftScores + s.RightScores
}

// String formats the scoreboard the way it is drawn on screen
func (s Scores) String() string {
	return fmt.Sprintf("%d   %d", s.LeftScores, s.RightScores)
}
