package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// CardsPerHand is the number of cards dealt to each hand at the start
const CardsPerHand = 2

// DealerName is the name of the dealer's hand
const DealerName = "Dealer"

var (
	// ErrInvalidPlayerCount is returned for a player count outside the table limits
	ErrInvalidPlayerCount = errors.New("invalid player count")
	// ErrDeckExhausted is returned when a single deck cannot cover the initial deal
	ErrDeckExhausted = errors.New("not enough cards to deal every hand")
)

// Game is one dealt table: a deck, the dealer's hand and the players' hands.
type Game struct {
	deck    *deck.Deck
	dealer  *Hand
	players []*Hand
	cfg     *gameConfig
}

// CardsNeeded returns how many cards the initial deal takes for n players
func CardsNeeded(players int) int {
	return CardsPerHand + CardsPerHand*players
}

// New builds and shuffles a deck, then deals two cards to the dealer and two
// to each of "Player 1".."Player N" in order. The player count is checked
// against the table limits and the deck size before any card is dealt; a
// count the deck cannot cover reports ErrDeckExhausted.
func New(playerCount int, opts ...Option) (*Game, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if playerCount < cfg.minPlayers {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidPlayerCount, playerCount, cfg.minPlayers)
	}

	d := cfg.deck
	if d == nil {
		d = deck.New(cfg.rng)
		d.Shuffle()
	}

	if need := CardsNeeded(playerCount); need > d.Remaining() {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck has %d", ErrDeckExhausted, playerCount, need, d.Remaining())
	}
	if playerCount > cfg.maxPlayers {
		return nil, fmt.Errorf("%w: %d (maximum %d)", ErrInvalidPlayerCount, playerCount, cfg.maxPlayers)
	}

	g := &Game{
		deck:    d,
		players: make([]*Hand, 0, playerCount),
		cfg:     cfg,
	}

	dealer, err := g.deal(DealerName)
	if err != nil {
		return nil, err
	}
	g.dealer = dealer

	for i := 1; i <= playerCount; i++ {
		player, err := g.deal(fmt.Sprintf("Player %d", i))
		if err != nil {
			return nil, err
		}
		g.players = append(g.players, player)
	}

	return g, nil
}

func (g *Game) deal(name string) (*Hand, error) {
	cards, err := g.deck.Draw(CardsPerHand)
	if err != nil {
		return nil, fmt.Errorf("dealing %s: %w", name, err)
	}
	return NewHand(name, cards, g.cfg.handOptions()...), nil
}

// Dealer returns the dealer's hand
func (g *Game) Dealer() *Hand {
	return g.dealer
}

// Players returns the players' hands in seating order
func (g *Game) Players() []*Hand {
	return g.players
}

// Deck returns the deck the game deals from
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// RevealAll turns every card on the table face up
func (g *Game) RevealAll() {
	g.dealer.RevealAll()
	for _, p := range g.players {
		p.RevealAll()
	}
}
