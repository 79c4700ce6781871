package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0, *cfg.Table.MinPlayers)
	assert.Equal(t, 25, *cfg.Table.MaxPlayers)
	assert.Equal(t, 17, cfg.Table.DealerStandsOn)
	assert.False(t, cfg.Table.SoftAces)
	assert.Equal(t, ModeClassic, cfg.Table.Mode)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.Equal(t, "blackjack.log", cfg.UI.LogFile)
	assert.True(t, cfg.ShouldClearScreen())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
table {
  min_players      = 1
  max_players      = 7
  dealer_stands_on = 16
  soft_aces        = true
  mode             = "play"
}

ui {
  log_level    = "debug"
  log_file     = "/tmp/bj.log"
  clear_screen = false
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1, *cfg.Table.MinPlayers)
	assert.Equal(t, 7, *cfg.Table.MaxPlayers)
	assert.Equal(t, 16, cfg.Table.DealerStandsOn)
	assert.True(t, cfg.Table.SoftAces)
	assert.Equal(t, ModePlay, cfg.Table.Mode)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "/tmp/bj.log", cfg.UI.LogFile)
	assert.False(t, cfg.ShouldClearScreen())
	assert.Len(t, cfg.GameOptions(), 3)
}

func TestParsePartialAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`table { mode = "play" }`), "partial.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ModePlay, cfg.Table.Mode)
	assert.Equal(t, 0, *cfg.Table.MinPlayers)
	assert.Equal(t, 25, *cfg.Table.MaxPlayers)
	assert.Equal(t, 17, cfg.Table.DealerStandsOn)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.True(t, cfg.ShouldClearScreen())
}

func TestParseDealerOnlyTable(t *testing.T) {
	cfg, err := Parse([]byte(`table {
  min_players = 0
  max_players = 0
}`), "dealer-only.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, *cfg.Table.MaxPlayers, "explicit zero is kept")

	g, err := game.New(0, cfg.GameOptions()...)
	require.NoError(t, err)
	assert.Empty(t, g.Players())

	_, err = game.New(1, cfg.GameOptions()...)
	assert.ErrorIs(t, err, game.ErrInvalidPlayerCount)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`table { unknown = 1 }`), "unknown.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative min", func(c *Config) { *c.Table.MinPlayers = -1 }},
		{"max below min", func(c *Config) { *c.Table.MinPlayers = 5; *c.Table.MaxPlayers = 2 }},
		{"stand above 21", func(c *Config) { c.Table.DealerStandsOn = 22 }},
		{"stand too low", func(c *Config) { c.Table.DealerStandsOn = 1 }},
		{"unknown mode", func(c *Config) { c.Table.Mode = "tournament" }},
		{"unknown log level", func(c *Config) { c.UI.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
