package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface keeps every call as a line of text. Glyphs are 10x20.
type recordingSurface struct {
	calls []string
}

func (s *recordingSurface) Clear(c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("clear %v", c))
}

func (s *recordingSurface) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("line %d,%d-%d,%d", x0, y0, x1, y1))
}

func (s *recordingSurface) FillRect(r canvas.Rect, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("rect %d,%d %dx%d", r.X, r.Y, r.W, r.H))
}

func (s *recordingSurface) MeasureText(text string) (int, int) {
	return 10 * len(text), 20
}

func (s *recordingSurface) DrawText(text string, r canvas.Rect, c color.Color) {
	s.calls = append(s.calls, fmt.Sprintf("text %q at %d,%d", text, r.X, r.Y))
}

func TestSceneDrawOrder(t *testing.T) {
	ge := game.NewEngine(canvas.Playfield, nil)
	snap := ge.Snapshot()
	snap.Scores = scores.Scores{LeftScores: 3, RightScores: 1}
	snap.Ball = ball.Ball{X: 100, Y: 60, Dx: 1, Speed: 4}

	dst := &recordingSurface{}
	Scene(dst, snap)

	require.Len(t, dst.calls, 6)
	assert.Equal(t, []string{
		fmt.Sprintf("clear %v", Background),
		"line 256,0-256,512",
		// "3   1" is 50x20, centred on x=256 at the top
		`text "3   1" at 231,0`,
		"rect 24,224 16x64",
		"rect 472,224 16x64",
		"rect 96,56 8x8",
	}, dst.calls)
}

func TestSceneDoesNotMutateSnapshot(t *testing.T) {
	ge := game.NewEngine(canvas.Playfield, nil)
	ge.Step(game.Input{})
	snap := ge.Snapshot()
	before := snap

	Scene(&recordingSurface{}, snap)

	assert.Equal(t, before, snap)
	assert.Equal(t, before, ge.Snapshot())
}
