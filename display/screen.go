package display

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mo-shahab/go-pong/canvas"
	"golang.org/x/image/font/gofont/gomonobold"
)

// loadFace builds the score font from the bundled Go Mono Bold
func loadFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load score font: %w", err)
	}

	return &text.GoTextFace{
		Source: src,
		Size:   size,
	}, nil
}

// screen draws onto an ebiten image. It satisfies render.Surface.
type screen struct {
	img  *ebiten.Image
	face text.Face
}

func (s screen) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s screen) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	// pixel centres, so a 1px line covers exactly one column
	vector.StrokeLine(s.img, float32(x0)+0.5, float32(y0), float32(x1)+0.5, float32(y1), 1, c, false)
}

func (s screen) FillRect(r canvas.Rect, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s screen) MeasureText(str string) (int, int) {
	w, h := text.Measure(str, s.face, 0)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (s screen) DrawText(str string, r canvas.Rect, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, s.face, op)
}
