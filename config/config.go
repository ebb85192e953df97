package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

//go:embed pong.toml
var defaults string

// ErrInvalid is returned when a decoded configuration cannot be used
var ErrInvalid = errors.New("invalid config")

// Player binds a team to its movement keys
type Player struct {
	Team string `toml:"team"`
	Up   string `toml:"up"`
	Down string `toml:"down"`
}

// Keys names the quit and reset keys
type Keys struct {
	Quit  string `toml:"quit"`
	Reset string `toml:"reset"`
}

// Config holds the settings baked into the binary
type Config struct {
	Title          string   `toml:"title"`
	TicksPerSecond int      `toml:"ticks_per_second"`
	FontSize       float64  `toml:"font_size"`
	LogLevel       string   `toml:"log_level"`
	Keys           Keys     `toml:"keys"`
	Players        []Player `toml:"players"`
}

// Load decodes the embedded settings
func Load() (*Config, error) {
	return Decode(defaults)
}

// Decode parses and validates a TOML document
func Decode(data string) (*Config, error) {
	var c Config

	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Level is the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Validate checks that the settings describe a playable two-player session
func (c *Config) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks_per_second must be positive, got %d", ErrInvalid, c.TicksPerSecond)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalid, c.FontSize)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalid, len(c.Players))
	}

	teams := make(map[string]bool)
	keys := make(map[string]string)

	bind := func(key, action string) error {
		if key == "" {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalid, action)
		}
		if prev, taken := keys[key]; taken {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, prev, action)
		}
		keys[key] = action
		return nil
	}

	if err := bind(c.Keys.Quit, "quit"); err != nil {
		return err
	}
	if err := bind(c.Keys.Reset, "reset"); err != nil {
		return err
	}

	for _, p := range c.Players {
		if p.Team != "left" && p.Team != "right" {
			return fmt.Errorf("%w: unknown team %q", ErrInvalid, p.Team)
		}
		if teams[p.Team] {
			return fmt.Errorf("%w: team %q listed twice", ErrInvalid, p.Team)
		}
		teams[p.Team] = true

		if err := bind(p.Up, p.Team+" up"); err != nil {
			return err
		}
		if err := bind(p.Down, p.Team+" down"); err != nil {
			return err
		}
	}

	return nil
}
