package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
)

// Default table limits. The upper bound is the most players a single deck
// can deal two cards to after the dealer has taken two.
const (
	DefaultMinPlayers     = 0
	DefaultMaxPlayers     = (deck.Size - CardsPerHand) / CardsPerHand
	DefaultDealerStandsOn = 17
)

// Option configures a Game during creation.
type Option func(*gameConfig)

// gameConfig holds all configuration for creating a game.
type gameConfig struct {
	rng            *rand.Rand
	deck           *deck.Deck // pre-built deck, dealt without shuffling
	softAces       bool
	dealerStandsOn int
	minPlayers     int
	maxPlayers     int
}

func defaultConfig() *gameConfig {
	return &gameConfig{
		dealerStandsOn: DefaultDealerStandsOn,
		minPlayers:     DefaultMinPlayers,
		maxPlayers:     DefaultMaxPlayers,
	}
}

// WithRNG sets the random source used to shuffle the deck.
// Without it the deck is shuffled from process entropy.
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithDeck deals from d in its current order instead of building and
// shuffling a fresh deck.
func WithDeck(d *deck.Deck) Option {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// WithSoftAces enables soft-ace valuation on every hand in the game.
func WithSoftAces(enabled bool) Option {
	return func(c *gameConfig) {
		c.softAces = enabled
	}
}

// WithDealerStandsOn sets the total at which the dealer stops hitting.
func WithDealerStandsOn(total int) Option {
	return func(c *gameConfig) {
		c.dealerStandsOn = total
	}
}

// WithPlayerBounds sets the accepted range of player counts.
func WithPlayerBounds(minPlayers, maxPlayers int) Option {
	return func(c *gameConfig) {
		c.minPlayers = minPlayers
		c.maxPlayers = maxPlayers
	}
}

func (c *gameConfig) handOptions() []HandOption {
	if c.softAces {
		return []HandOption{SoftAces()}
	}
	return nil
}
