// Package display runs the game in an ebiten window.
package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/config"
	"github.com/mo-shahab/go-pong/render"
	"github.com/mo-shahab/go-pong/room"
	log "github.com/sirupsen/logrus"
)

// Game adapts a room to ebiten's update/draw loop
type Game struct {
	room    *room.Room
	kb      *keyboard
	face    *text.GoTextFace
	quitKey string
	entry   *log.Entry
}

// NewGame seats the configured players in a new room and prepares the
// keyboard and font
func NewGame(cfg *config.Config, entry *log.Entry) (*Game, error) {
	names := []string{cfg.Keys.Quit, cfg.Keys.Reset}
	clients := make([]*client.Client, 0, len(cfg.Players))

	for _, p := range cfg.Players {
		clients = append(clients, client.New(client.Team(p.Team), p.Up, p.Down))
		names = append(names, p.Up, p.Down)
	}

	kb, err := newKeyboard(names...)
	if err != nil {
		return nil, err
	}

	face, err := loadFace(cfg.FontSize)
	if err != nil {
		return nil, err
	}

	r, err := room.NewRoom(canvas.Playfield, clients, cfg.Keys.Reset, entry)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return &Game{
		room:    r,
		kb:      kb,
		face:    face,
		quitKey: cfg.Keys.Quit,
		entry:   entry.WithField("room", r.ID),
	}, nil
}

func (g *Game) Update() error {
	if g.kb.IsHeld(g.quitKey) {
		g.entry.Info("quit requested")
		return ebiten.Termination
	}

	g.room.Tick(g.kb)
	return nil
}

func (g *Game) Draw(img *ebiten.Image) {
	render.Scene(screen{img: img, face: g.face}, g.room.Engine.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvas.Playfield.Width, canvas.Playfield.Height
}

// Run opens the window and blocks until the player quits or closes it
func Run(cfg *config.Config, entry *log.Entry) error {
	g, err := NewGame(cfg, entry)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(canvas.Playfield.Width, canvas.Playfield.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	snap := g.room.Engine.Snapshot()
	g.entry.WithField("frames", snap.Frame).Infof("game over. Final score: %s", snap.Scores)

	return nil
}
