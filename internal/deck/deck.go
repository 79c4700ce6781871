package deck

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/randutil"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrNotEnoughCards is returned when a draw asks for more cards than remain
var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Deck is a 52-card deck split into the cards still drawable and the cards
// already dealt. Every card is in exactly one of the two.
type Deck struct {
	drawable []Card
	drawn    []Card
	rng      *rand.Rand
}

// New creates a full, unshuffled deck ordered suit by suit (C, D, H, S) with
// ranks ascending from 2 to Ace. A nil rng uses an entropy-seeded source.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.NewFromEntropy()
	}

	d := &Deck{
		drawable: make([]Card, 0, Size),
		drawn:    make([]Card, 0, Size),
		rng:      rng,
	}

	for s := 0; s <= 3; s++ {
		suit, err := SuitFromCode(s)
		if err != nil {
			panic(err)
		}
		for r := 2; r <= 14; r++ {
			rank, err := RankFromCode(r)
			if err != nil {
				panic(err)
			}
			d.drawable = append(d.drawable, NewCard(rank, suit))
		}
	}

	return d
}

// Shuffle randomizes the order of the drawable cards using Fisher-Yates.
// Cards already drawn are untouched.
func (d *Deck) Shuffle() {
	for i := len(d.drawable) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.drawable[i], d.drawable[j] = d.drawable[j], d.drawable[i]
	}
}

// Draw removes the first n drawable cards, records them as drawn and returns
// them in order. The returned slice belongs to the caller.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.drawable) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrNotEnoughCards, n, len(d.drawable))
	}

	cards := make([]Card, n)
	copy(cards, d.drawable[:n])
	d.drawn = append(d.drawn, cards...)
	d.drawable = append(d.drawable[:0], d.drawable[n:]...)

	return cards, nil
}

// DrawOne draws a single card
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Render writes the render line of every drawable card to w
func (d *Deck) Render(w io.Writer) error {
	for _, card := range d.drawable {
		if _, err := fmt.Fprintln(w, card); err != nil {
			return err
		}
	}
	return nil
}

// Remaining returns the number of drawable cards
func (d *Deck) Remaining() int {
	return len(d.drawable)
}

// Drawable returns a copy of the cards not yet dealt, front first
func (d *Deck) Drawable() []Card {
	return append([]Card(nil), d.drawable...)
}

// Drawn returns a copy of the cards already dealt, in dealing order
func (d *Deck) Drawn() []Card {
	return append([]Card(nil), d.drawn...)
}
