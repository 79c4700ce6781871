package deck

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidRank is returned when a rank is built from a code outside 2-14
	ErrInvalidRank = errors.New("invalid rank code")
	// ErrInvalidSuit is returned when a suit is built from a code outside 0-3
	ErrInvalidSuit = errors.New("invalid suit code")
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// SuitFromCode converts an integer code (0-3) into a Suit
func SuitFromCode(code int) (Suit, error) {
	if code < int(Clubs) || code > int(Spades) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, code)
	}
	return Suit(code), nil
}

// String returns the one-character glyph of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankFromCode converts an integer code (2-14) into a Rank
func RankFromCode(code int) (Rank, error) {
	if code < int(Two) || code > int(Ace) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, code)
	}
	return Rank(code), nil
}

// String returns the display glyph of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return strconv.Itoa(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Points returns the blackjack value of the rank. Aces are always 11 here;
// soft totals are a hand-level concern.
func (r Rank) Points() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Card is a playing card. A card is dealt face down and can only ever be
// turned face up.
type Card struct {
	Rank   Rank
	Suit   Suit
	hidden bool
}

// NewCard creates a new hidden card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, hidden: true}
}

// Hidden reports whether the card is still face down
func (c Card) Hidden() bool {
	return c.hidden
}

// Reveal turns the card face up
func (c *Card) Reveal() {
	c.hidden = false
}

// Revealed returns a face-up copy of c
func (c Card) Revealed() Card {
	c.hidden = false
	return c
}

// Face returns the rank and suit glyphs, or the placeholders while hidden
func (c Card) Face() (rank, suit string) {
	if c.hidden {
		return "Hidden", "-"
	}
	return c.Rank.String(), c.Suit.String()
}

// String returns the render line of a card, e.g. "Card value: A, Card suit: S"
func (c Card) String() string {
	rank, suit := c.Face()
	return fmt.Sprintf("Card value: %s, Card suit: %s", rank, suit)
}

// Short returns a compact form such as "10H" or "??"
func (c Card) Short() string {
	if c.hidden {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

// Points returns the card's contribution to a hand total; hidden cards count 0
func (c Card) Points() int {
	if c.hidden {
		return 0
	}
	return c.Rank.Points()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Same reports whether two cards have the same rank and suit, ignoring visibility
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}
