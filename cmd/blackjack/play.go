package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
)

// PlayerCountPrompt is asked when --players is not given
const PlayerCountPrompt = "How many players do you wants?"

// PlayCmd runs an interactive session
type PlayCmd struct {
	Players  *int   `short:"p" help:"Number of players (asked for when omitted)"`
	Mode     string `short:"m" help:"Loop mode: classic or play (overrides config)"`
	Seed     *int64 `help:"Deterministic shuffle seed (optional)"`
	NoClear  bool   `help:"Do not clear the screen between redraws"`
	ShowDeck bool   `help:"Print the undealt cards when the session ends"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.Mode != "" {
		cfg.Table.Mode = c.Mode
	}
	if c.NoClear {
		cfg.UI.ClearScreen = new(bool)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg, "blackjack")
	if err != nil {
		return err
	}
	defer closeLog()

	var consoleOpts []console.Option
	if !cfg.ShouldClearScreen() {
		consoleOpts = append(consoleOpts, console.WithoutClear())
	}
	con := console.New(os.Stdin, os.Stdout, consoleOpts...)
	renderer := display.NewRenderer(os.Stdout)

	players, err := c.playerCount(con)
	if err != nil {
		logger.Error("Failed to read player count", "error", err)
		return err
	}

	opts := cfg.GameOptions()
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		opts = append(opts, game.WithRNG(randutil.New(*c.Seed)))
	}

	sess := session.New(con, renderer, session.Config{
		Mode:        session.Mode(cfg.Table.Mode),
		GameOptions: opts,
		Logger:      logger,
		Clock:       quartz.NewReal(),
	})

	ctx := setupSignalHandler(logger)
	err = sess.Run(ctx, players)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if c.ShowDeck && sess.Game() != nil {
		_ = renderer.Title(fmt.Sprintf("Undealt cards (%d)", sess.Game().Deck().Remaining()))
		_ = renderer.Deck(sess.Game().Deck())
	}

	return err
}

func (c *PlayCmd) playerCount(con *console.Console) (int, error) {
	if c.Players != nil {
		return *c.Players, nil
	}

	con.Clear()
	n, err := con.AskCount(PlayerCountPrompt)
	if err != nil {
		return 0, fmt.Errorf("reading player count: %w", err)
	}
	return n, nil
}
