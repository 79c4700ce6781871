// Package simulator plays many automated blackjack rounds to measure how a
// table configuration settles.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds      int
	Players     int
	Workers     int
	Seed        int64 // 0 picks a random seed, reported back in the Report
	StandOn     int   // players hit below this total
	GameOptions []game.Option
	Logger      *log.Logger
	Clock       quartz.Clock
}

// Report is the outcome of a simulation run
type Report struct {
	ID      string                 `json:"id"`
	Seed    int64                  `json:"seed"`
	Players int                    `json:"players"`
	Workers int                    `json:"workers"`
	Elapsed time.Duration          `json:"elapsed_ns"`
	Stats   *statistics.Statistics `json:"stats"`
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.StandOn <= 0 {
		config.StandOn = game.DefaultDealerStandsOn
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Run plays every round, spreading them over the configured workers. Each
// worker owns its random source, so a fixed seed and worker count always
// give the same report.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if need := game.CardsNeeded(cfg.Players); need > deck.Size {
		return nil, fmt.Errorf("%w: %d players need %d cards", game.ErrDeckExhausted, cfg.Players, need)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randutil.NewFromEntropy().Int64()
	}

	report := &Report{
		ID:      uuid.NewString(),
		Seed:    seed,
		Players: cfg.Players,
		Workers: cfg.Workers,
	}
	logger := s.logger.With("simulation", report.ID)
	logger.Info("Starting simulation", "rounds", cfg.Rounds, "players", cfg.Players, "workers", cfg.Workers, "seed", seed)

	start := s.clock.Now()
	perWorker := make([]*statistics.Statistics, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)

	base, remainder := cfg.Rounds/cfg.Workers, cfg.Rounds%cfg.Workers
	for w := 0; w < cfg.Workers; w++ {
		rounds := base
		if w < remainder {
			rounds++
		}
		stats := &statistics.Statistics{}
		perWorker[w] = stats

		g.Go(func() error {
			return s.runWorker(ctx, randutil.Derive(seed, w), rounds, stats)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range perWorker {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report.Stats = total
	report.Elapsed = s.clock.Since(start)
	logger.Info("Simulation complete", "hands", total.Hands, "wins", total.Wins, "losses", total.Losses, "pushes", total.Pushes, "elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) runWorker(ctx context.Context, rng *rand.Rand, rounds int, stats *statistics.Statistics) error {
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.playRound(randutil.New(rng.Int64()), stats); err != nil {
			return err
		}
	}
	return nil
}

// playRound deals one game, plays every player with the dealer's rule, plays
// the dealer and records the settlement. A hand that cannot draw because the
// deck ran out simply stands.
func (s *Simulator) playRound(rng *rand.Rand, stats *statistics.Statistics) error {
	opts := append(append([]game.Option(nil), s.config.GameOptions...), game.WithRNG(rng))
	g, err := game.New(s.config.Players, opts...)
	if err != nil {
		return err
	}

	g.Dealer().Reveal(0)
	for _, p := range g.Players() {
		p.RevealAll()
		for g.CanHit(p) && p.Value() < s.config.StandOn {
			if err := g.Hit(p); err != nil {
				if errors.Is(err, deck.ErrNotEnoughCards) {
					break
				}
				return err
			}
		}
	}

	if _, err := g.PlayDealer(); err != nil && !errors.Is(err, deck.ErrNotEnoughCards) {
		return err
	}

	stats.AddRound(g.Dealer(), g.Results())
	return nil
}
