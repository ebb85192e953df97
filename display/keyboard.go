package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyboard polls ebiten for keys referred to by name ("W", "ArrowUp", ...)
type keyboard struct {
	keys map[string]ebiten.Key
}

func newKeyboard(names ...string) (*keyboard, error) {
	kb := &keyboard{keys: make(map[string]ebiten.Key, len(names))}

	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		kb.keys[name] = k
	}

	return kb, nil
}

func (kb *keyboard) IsHeld(name string) bool {
	k, ok := kb.keys[name]
	return ok && ebiten.IsKeyPressed(k)
}

func (kb *keyboard) JustPressed(name string) bool {
	k, ok := kb.keys[name]
	return ok && inpututil.IsKeyJustPressed(k)
}
