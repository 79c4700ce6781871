package game

import "github.com/lox/blackjack/internal/deck"

// faceUp builds revealed cards for hands in tests and examples
func faceUp(ranks ...deck.Rank) []deck.Card {
	cards := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = deck.NewCard(r, deck.Suit(i%4)).Revealed()
	}
	return cards
}
