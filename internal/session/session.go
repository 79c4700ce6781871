// Package session drives an interactive blackjack session: it deals a game,
// redraws the table and waits for the user between steps.
//
// Classic mode repeats a reveal-and-redraw round until the user types "q" or
// input ends. Play mode extends the loop with hit/stand turns, the dealer's
// turn and settlement, ending in PhaseRoundOver after every round.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// errQuit ends the loop without an error
var errQuit = errors.New("quit")

// Config holds configuration for a session
type Config struct {
	Mode        Mode
	GameOptions []game.Option
	Logger      *log.Logger
	Clock       quartz.Clock
}

// Session runs the turn loop for one terminal
type Session struct {
	id       string
	mode     Mode
	opts     []game.Option
	console  *console.Console
	render   *display.Renderer
	logger   *log.Logger
	clock    quartz.Clock
	phase    Phase
	game     *game.Game
	players  int
	round    int
	started  time.Time
	onChange func(old, next Phase)
}

// New creates a session writing to con through r
func New(con *console.Console, r *display.Renderer, cfg Config) *Session {
	id := uuid.NewString()

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	mode := cfg.Mode
	if mode == "" {
		mode = Classic
	}

	return &Session{
		id:      id,
		mode:    mode,
		opts:    cfg.GameOptions,
		console: con,
		render:  r,
		logger:  logger.WithPrefix("session").With("session", id),
		clock:   clock,
		phase:   PhaseSetup,
	}
}

// OnPhaseChange registers a callback fired on every transition
func (s *Session) OnPhaseChange(fn func(old, next Phase)) {
	s.onChange = fn
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Game returns the game of the current round, nil before Run deals
func (s *Session) Game() *game.Game {
	return s.game
}

// Round returns the number of rounds dealt so far
func (s *Session) Round() int {
	return s.round
}

// Run deals a game for playerCount players and drives the loop until the
// user quits, input ends or ctx is cancelled. Quitting and end of input are
// not errors.
func (s *Session) Run(ctx context.Context, playerCount int) error {
	s.players = playerCount
	s.logger.Info("Starting session", "mode", s.mode, "players", playerCount)

	err := s.run(ctx)
	s.transition(PhaseFinished)

	switch {
	case err == nil, errors.Is(err, errQuit), errors.Is(err, io.EOF):
		s.logger.Info("Session finished", "rounds", s.round)
		return nil
	default:
		s.logger.Error("Session ended", "error", err)
		return err
	}
}

func (s *Session) run(ctx context.Context) error {
	if err := s.deal(); err != nil {
		return err
	}

	for {
		if err := s.setup(ctx); err != nil {
			return err
		}

		if s.mode == Classic {
			for {
				if err := s.roundActive(ctx); err != nil {
					return err
				}
			}
		}

		if err := s.playerTurns(ctx); err != nil {
			return err
		}
		if err := s.dealerTurn(); err != nil {
			return err
		}
		again, err := s.roundOver(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		if err := s.deal(); err != nil {
			return err
		}
	}
}

func (s *Session) transition(next Phase) {
	old := s.phase
	s.phase = next
	s.logger.Debug("Phase change", "from", old, "to", next, "round", s.round)
	if s.onChange != nil {
		s.onChange(old, next)
	}
}

func (s *Session) deal() error {
	g, err := game.New(s.players, s.opts...)
	if err != nil {
		return fmt.Errorf("dealing round %d: %w", s.round+1, err)
	}
	s.game = g
	s.round++
	s.started = s.clock.Now()
	s.logger.Info("Dealt round", "round", s.round, "players", len(g.Players()), "remaining", g.Deck().Remaining())
	return nil
}

// gate blocks until the user acknowledges with a line of input
func (s *Session) gate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.render.Prompt(prompt); err != nil {
		return "", err
	}
	line, err := s.console.ReadLineContext(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) setup(ctx context.Context) error {
	s.transition(PhaseSetup)
	s.console.Clear()
	if err := s.render.Table(s.game); err != nil {
		return err
	}
	answer, err := s.gate(ctx, display.ContinuePrompt)
	if err != nil {
		return err
	}
	if isQuit(answer) {
		return errQuit
	}
	return nil
}

func (s *Session) roundActive(ctx context.Context) error {
	s.transition(PhaseRoundActive)
	s.console.Clear()

	dealer := s.game.Dealer()
	dealer.RevealAll()
	if err := s.render.Hand(dealer); err != nil {
		return err
	}
	for _, p := range s.game.Players() {
		p.RevealAll()
		if err := s.render.Hand(p); err != nil {
			return err
		}
	}

	answer, err := s.gate(ctx, display.ContinuePrompt)
	if err != nil {
		return err
	}
	if isQuit(answer) {
		return errQuit
	}
	return nil
}

func (s *Session) playerTurns(ctx context.Context) error {
	s.transition(PhasePlayerTurns)
	s.game.Dealer().Reveal(0)

	for _, p := range s.game.Players() {
		p.RevealAll()
		if err := s.playerTurn(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) playerTurn(ctx context.Context, p *game.Hand) error {
	stood := false
	for !stood && s.game.CanHit(p) {
		s.console.Clear()
		if err := s.render.Table(s.game); err != nil {
			return err
		}

		answer, err := s.gate(ctx, fmt.Sprintf("%s: [h]it or [s]tand?", p.Name()))
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "h", "hit":
			if err := s.game.Hit(p); err != nil {
				return err
			}
			s.logger.Debug("Player hit", "player", p.Name(), "value", p.Value())
		case "s", "stand":
			stood = true
		case "q", "quit":
			return errQuit
		}
	}

	s.logger.Info("Player done", "player", p.Name(), "value", p.Value(), "bust", p.IsBust(), "stood", stood)

	// the turn summary stays on screen until acknowledged
	s.console.Clear()
	if err := s.render.Table(s.game); err != nil {
		return err
	}
	var err error
	switch {
	case p.IsBust():
		err = s.render.Message("%s busts with %d", p.Name(), p.Value())
	case stood:
		err = s.render.Message("%s stands with %d", p.Name(), p.Value())
	default:
		err = s.render.Message("%s has %d", p.Name(), p.Value())
	}
	if err != nil {
		return err
	}
	answer, err := s.gate(ctx, display.ContinuePrompt)
	if err != nil {
		return err
	}
	if isQuit(answer) {
		return errQuit
	}
	return nil
}

func (s *Session) dealerTurn() error {
	s.transition(PhaseDealerTurn)
	hits, err := s.game.PlayDealer()
	if err != nil {
		return err
	}
	dealer := s.game.Dealer()
	s.logger.Info("Dealer done", "hits", hits, "value", dealer.Value(), "bust", dealer.IsBust())
	return nil
}

func (s *Session) roundOver(ctx context.Context) (bool, error) {
	s.transition(PhaseRoundOver)
	s.console.Clear()

	if err := s.render.Table(s.game); err != nil {
		return false, err
	}
	results := s.game.Results()
	if err := s.render.Results(s.game.Dealer(), results); err != nil {
		return false, err
	}
	for _, res := range results {
		s.logger.Info("Result", "round", s.round, "player", res.Player, "value", res.Value, "outcome", res.Outcome)
	}
	s.logger.Info("Round over", "round", s.round, "duration", s.clock.Since(s.started))

	answer, err := s.gate(ctx, "Play again? [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func isQuit(answer string) bool {
	switch strings.ToLower(answer) {
	case "q", "quit":
		return true
	default:
		return false
	}
}
