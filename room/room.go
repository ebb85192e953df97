package room

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/game"
	log "github.com/sirupsen/logrus"
)

// ErrTeams is returned when the clients do not cover exactly one left and one right paddle
var ErrTeams = errors.New("room needs one left and one right client")

// ErrBindings is returned when a key is missing or bound to more than one action
var ErrBindings = errors.New("invalid key bindings")

// Keyboard is the input state polled once per frame
type Keyboard interface {
	IsHeld(key string) bool
	JustPressed(key string) bool
}

// Room is a single local match: two clients sharing a keyboard and the engine they drive
type Room struct {
	ID       string
	Clients  map[client.Team]*client.Client
	ResetKey string
	Engine   *game.Engine
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// checkBindings makes sure every action has its own key
func checkBindings(seats map[client.Team]*client.Client, resetKey string) error {
	keys := make(map[string]bool)

	bind := func(key, action string) error {
		if key == "" {
			return fmt.Errorf("%w: no key bound to %s", ErrBindings, action)
		}
		if keys[key] {
			return fmt.Errorf("%w: key %q bound twice", ErrBindings, key)
		}
		keys[key] = true
		return nil
	}

	if err := bind(resetKey, "reset"); err != nil {
		return err
	}
	for _, team := range []client.Team{client.Left, client.Right} {
		cl := seats[team]
		if err := bind(cl.Up, string(team)+" up"); err != nil {
			return err
		}
		if err := bind(cl.Down, string(team)+" down"); err != nil {
			return err
		}
	}

	return nil
}

// NewRoom seats the clients and starts a fresh engine on c. Game events are
// logged through entry, tagged with the room id; a nil entry logs to the
// standard logger.
func NewRoom(c canvas.Canvas, clients []*client.Client, resetKey string, entry *log.Entry) (*Room, error) {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}

	seats := make(map[client.Team]*client.Client, len(clients))

	for _, cl := range clients {
		if cl.Team != client.Left && cl.Team != client.Right {
			return nil, fmt.Errorf("%w: unknown team %q", ErrTeams, cl.Team)
		}
		if _, taken := seats[cl.Team]; taken {
			return nil, fmt.Errorf("%w: %s seated twice", ErrTeams, cl.Team)
		}
		seats[cl.Team] = cl
	}
	if len(seats) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTeams, len(seats))
	}
	if err := checkBindings(seats, resetKey); err != nil {
		return nil, err
	}

	roomId := generateRoomId()
	entry = entry.WithField("room", roomId)

	room := &Room{
		ID:       roomId,
		Clients:  seats,
		ResetKey: resetKey,
		Engine:   game.NewEngine(c, game.NewLogEventHandler(entry)),
	}

	entry.WithFields(log.Fields{
		"left":  seats[client.Left].ID,
		"right": seats[client.Right].ID,
	}).Info("created room")

	return room, nil
}

// Input reads this frame's requests from the keyboard
func (r *Room) Input(kb Keyboard) game.Input {
	return game.Input{
		Left:  r.Clients[client.Left].Direction(kb.IsHeld),
		Right: r.Clients[client.Right].Direction(kb.IsHeld),
		Reset: kb.JustPressed(r.ResetKey),
	}
}

// Tick advances the match by one frame
func (r *Room) Tick(kb Keyboard) {
	r.Engine.Step(r.Input(kb))
}
