package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestSimulatorConservesHands(t *testing.T) {
	t.Parallel()

	sim := New(Config{
		Rounds:  250,
		Players: 3,
		Workers: 4,
		Seed:    42,
		Logger:  quietLogger(),
		Clock:   quartz.NewMock(t),
	})

	report, err := sim.Run(context.Background())
	require.NoError(t, err)

	stats := report.Stats
	assert.Equal(t, 250, stats.Rounds)
	assert.Equal(t, 750, stats.Hands)
	assert.Equal(t, stats.Hands, stats.Wins+stats.Losses+stats.Pushes)
	assert.LessOrEqual(t, stats.PlayerBusts, stats.Losses)
	assert.Greater(t, stats.Wins, 0)
	assert.Greater(t, stats.Losses, 0)
	assert.NoError(t, stats.Validate())

	assert.Equal(t, int64(42), report.Seed)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, time.Duration(0), report.Elapsed, "mock clock never advanced")
}

func TestSimulatorIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func() *Report {
		report, err := New(Config{
			Rounds:      120,
			Players:     2,
			Workers:     3,
			Seed:        7,
			GameOptions: []game.Option{game.WithSoftAces(true)},
			Logger:      quietLogger(),
		}).Run(context.Background())
		require.NoError(t, err)
		return report
	}

	a, b := run(), run()
	assert.Equal(t, a.Stats, b.Stats)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSimulatorRandomSeedIsReported(t *testing.T) {
	t.Parallel()

	report, err := New(Config{Rounds: 5, Players: 1, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, report.Seed)
	assert.Equal(t, 1, report.Workers)
}

func TestSimulatorFullTable(t *testing.T) {
	t.Parallel()

	// 25 players empty the deck on the deal, so nobody can hit
	report, err := New(Config{Rounds: 10, Players: 25, Seed: 3, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 250, report.Stats.Hands)
}

func TestSimulatorRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Rounds: 0, Players: 1}).Run(context.Background())
	assert.Error(t, err)

	_, err = New(Config{Rounds: 1, Players: 26}).Run(context.Background())
	assert.ErrorIs(t, err, game.ErrDeckExhausted)
}

func TestSimulatorHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Rounds: 100, Players: 1, Workers: 2, Seed: 1}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
