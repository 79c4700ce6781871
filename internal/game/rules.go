package game

import (
	"fmt"
)

// Outcome is the result of one player's hand against the dealer
type Outcome int

const (
	Lose Outcome = iota
	Push
	Win
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Result pairs a player's hand with its outcome
type Result struct {
	Player    string
	Value     int
	Blackjack bool
	Bust      bool
	Outcome   Outcome
}

// Hit draws one card face up into h
func (g *Game) Hit(h *Hand) error {
	card, err := g.deck.DrawOne()
	if err != nil {
		return fmt.Errorf("%s hit: %w", h.Name(), err)
	}
	card.Reveal()
	h.Add(card)
	return nil
}

// CanHit reports whether a player hand may still take a card
func (g *Game) CanHit(h *Hand) bool {
	return h.Value() < BlackjackTotal
}

// DealerShouldHit reports whether the dealer must draw under the house rule
func (g *Game) DealerShouldHit() bool {
	return g.dealer.Value() < g.cfg.dealerStandsOn
}

// PlayDealer reveals the dealer's cards and hits until the dealer reaches the
// stand threshold or the deck runs out. It returns the number of hits taken.
func (g *Game) PlayDealer() (int, error) {
	g.dealer.RevealAll()

	hits := 0
	for g.DealerShouldHit() {
		if err := g.Hit(g.dealer); err != nil {
			return hits, err
		}
		hits++
	}
	return hits, nil
}

// Compare settles a player's hand against the dealer's. A busted player loses
// even when the dealer also busts.
func Compare(dealer, player *Hand) Outcome {
	switch {
	case player.IsBust():
		return Lose
	case dealer.IsBust():
		return Win
	case player.IsBlackjack() && !dealer.IsBlackjack():
		return Win
	case dealer.IsBlackjack() && !player.IsBlackjack():
		return Lose
	case player.Value() > dealer.Value():
		return Win
	case player.Value() < dealer.Value():
		return Lose
	default:
		return Push
	}
}

// Results settles every player against the dealer, in seating order
func (g *Game) Results() []Result {
	results := make([]Result, 0, len(g.players))
	for _, p := range g.players {
		results = append(results, Result{
			Player:    p.Name(),
			Value:     p.Value(),
			Blackjack: p.IsBlackjack(),
			Bust:      p.IsBust(),
			Outcome:   Compare(g.dealer, p),
		})
	}
	return results
}
