package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Pong", c.Title)
	assert.Equal(t, 60, c.TicksPerSecond)
	assert.Equal(t, 72.0, c.FontSize)
	assert.Equal(t, log.InfoLevel, c.Level())
	assert.Equal(t, Keys{Quit: "Escape", Reset: "R"}, c.Keys)
	assert.Equal(t, []Player{
		{Team: "left", Up: "W", Down: "S"},
		{Team: "right", Up: "ArrowUp", Down: "ArrowDown"},
	}, c.Players)
}

const valid = `
title = "Pong"
ticks_per_second = 60
font_size = 72.0
log_level = "debug"

[keys]
quit = "Escape"
reset = "R"

[[players]]
team = "left"
up = "W"
down = "S"

[[players]]
team = "right"
up = "ArrowUp"
down = "ArrowDown"
`

func TestDecodeValid(t *testing.T) {
	c, err := Decode(valid)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, c.Level())
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tick rate", `ticks_per_second = 0`},
		{"unknown key", valid + "\nspeed_cap = 30\n"},
		{"bad log level", `
ticks_per_second = 60
font_size = 72.0
log_level = "loud"
`},
		{"one player", `
ticks_per_second = 60
font_size = 72.0
log_level = "info"
[keys]
quit = "Escape"
reset = "R"
[[players]]
team = "left"
up = "W"
down = "S"
`},
		{"same team twice", `
ticks_per_second = 60
font_size = 72.0
log_level = "info"
[keys]
quit = "Escape"
reset = "R"
[[players]]
team = "left"
up = "W"
down = "S"
[[players]]
team = "left"
up = "ArrowUp"
down = "ArrowDown"
`},
		{"shared key", `
ticks_per_second = 60
font_size = 72.0
log_level = "info"
[keys]
quit = "Escape"
reset = "R"
[[players]]
team = "left"
up = "W"
down = "S"
[[players]]
team = "right"
up = "W"
down = "ArrowDown"
`},
		{"reset on a movement key", `
ticks_per_second = 60
font_size = 72.0
log_level = "info"
[keys]
quit = "Escape"
reset = "S"
[[players]]
team = "left"
up = "W"
down = "S"
[[players]]
team = "right"
up = "ArrowUp"
down = "ArrowDown"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(`title = `)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
