// Package config loads the game's HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// Game loop modes
const (
	ModeClassic = "classic"
	ModePlay    = "play"
)

// Config represents the complete configuration. Both blocks are optional.
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// TableSettings contains the house rules
type TableSettings struct {
	MinPlayers     *int   `hcl:"min_players,optional"`
	MaxPlayers     *int   `hcl:"max_players,optional"`
	DealerStandsOn int    `hcl:"dealer_stands_on,optional"`
	SoftAces       bool   `hcl:"soft_aces,optional"`
	Mode           string `hcl:"mode,optional"`
}

// UISettings contains terminal and logging settings
type UISettings struct {
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"`
	ClearScreen *bool  `hcl:"clear_screen,optional"`
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			MinPlayers:     intPtr(game.DefaultMinPlayers),
			MaxPlayers:     intPtr(game.DefaultMaxPlayers),
			DealerStandsOn: game.DefaultDealerStandsOn,
			SoftAces:       false,
			Mode:           ModeClassic,
		},
		UI: &UISettings{
			LogLevel:    "info",
			LogFile:     "blackjack.log",
			ClearScreen: boolPtr(true),
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse loads configuration from HCL source held in memory
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Table.MinPlayers == nil {
		c.Table.MinPlayers = defaults.Table.MinPlayers
	}
	if c.Table.MaxPlayers == nil {
		c.Table.MaxPlayers = defaults.Table.MaxPlayers
	}
	if c.Table.DealerStandsOn == 0 {
		c.Table.DealerStandsOn = defaults.Table.DealerStandsOn
	}
	if c.Table.Mode == "" {
		c.Table.Mode = defaults.Table.Mode
	}

	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.ClearScreen == nil {
		c.UI.ClearScreen = defaults.UI.ClearScreen
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.MinPlayers == nil || *c.Table.MinPlayers < 0 {
		return fmt.Errorf("min players cannot be negative")
	}
	if c.Table.MaxPlayers == nil || *c.Table.MaxPlayers < *c.Table.MinPlayers {
		return fmt.Errorf("max players must be set and not below min players (%d)", *c.Table.MinPlayers)
	}
	if c.Table.DealerStandsOn < 2 || c.Table.DealerStandsOn > game.BlackjackTotal {
		return fmt.Errorf("dealer stands on must be between 2 and %d, got %d", game.BlackjackTotal, c.Table.DealerStandsOn)
	}

	validModes := map[string]bool{
		ModeClassic: true,
		ModePlay:    true,
	}
	if !validModes[c.Table.Mode] {
		return fmt.Errorf("invalid mode: %s", c.Table.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// GameOptions converts the table settings into game options
func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithPlayerBounds(*c.Table.MinPlayers, *c.Table.MaxPlayers),
		game.WithDealerStandsOn(c.Table.DealerStandsOn),
		game.WithSoftAces(c.Table.SoftAces),
	}
}

// ShouldClearScreen reports whether redraws clear the terminal
func (c *Config) ShouldClearScreen() bool {
	return c.UI.ClearScreen == nil || *c.UI.ClearScreen
}
