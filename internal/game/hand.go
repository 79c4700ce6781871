package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// BlackjackTotal is the best possible hand value
const BlackjackTotal = 21

// HandOption configures a Hand during creation.
type HandOption func(*Hand)

// SoftAces lets an Ace count as 1 instead of 11 whenever 11 would bust
// the hand.
func SoftAces() HandOption {
	return func(h *Hand) {
		h.softAces = true
	}
}

// Hand is a named set of cards belonging to the dealer or a player.
//
// The value is cached. Every mutation goes through RevealAll, Add or
// RecomputeValue so the cached total always matches the face-up cards.
type Hand struct {
	name     string
	cards    []deck.Card
	value    int
	softAces bool
}

// NewHand creates a hand holding cards. The value only counts face-up cards,
// so a freshly dealt hand is worth 0.
func NewHand(name string, cards []deck.Card, opts ...HandOption) *Hand {
	h := &Hand{
		name:  name,
		cards: cards,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.RecomputeValue()
	return h
}

// RecomputeValue recalculates the cached value from the face-up cards
func (h *Hand) RecomputeValue() {
	value, aces := 0, 0
	for _, card := range h.cards {
		if card.Hidden() {
			continue
		}
		value += card.Points()
		if card.IsAce() {
			aces++
		}
	}

	if h.softAces {
		for value > BlackjackTotal && aces > 0 {
			value -= 10
			aces--
		}
	}

	h.value = value
}

// RevealAll turns every card face up and refreshes the value
func (h *Hand) RevealAll() {
	for i := range h.cards {
		h.cards[i].Reveal()
	}
	h.RecomputeValue()
}

// Reveal turns card i face up and refreshes the value. Out of range indexes
// are ignored.
func (h *Hand) Reveal(i int) {
	if i < 0 || i >= len(h.cards) {
		return
	}
	h.cards[i].Reveal()
	h.RecomputeValue()
}

// Add appends a card to the hand and refreshes the value
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
	h.RecomputeValue()
}

// Name returns the hand's owner, e.g. "Dealer" or "Player 2"
func (h *Hand) Name() string {
	return h.name
}

// Value returns the cached total of the face-up cards
func (h *Hand) Value() int {
	return h.value
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h.cards...)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// AllRevealed reports whether every card is face up
func (h *Hand) AllRevealed() bool {
	for _, card := range h.cards {
		if card.Hidden() {
			return false
		}
	}
	return true
}

// IsBust reports whether the visible total is over 21
func (h *Hand) IsBust() bool {
	return h.value > BlackjackTotal
}

// IsBlackjack reports a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.value == BlackjackTotal && h.AllRevealed()
}
