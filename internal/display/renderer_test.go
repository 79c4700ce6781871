package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardLine(t *testing.T) {
	r := NewPlainRenderer(&bytes.Buffer{})

	card := deck.NewCard(deck.Ten, deck.Hearts)
	assert.Equal(t, "Card value: Hidden, Card suit: -", r.CardLine(card))

	card.Reveal()
	assert.Equal(t, "Card value: 10, Card suit: H", r.CardLine(card))
	assert.Equal(t, card.String(), r.CardLine(card), "plain output matches the card's own text")
}

func TestHandBlock(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)

	h := game.NewHand("Player 1", []deck.Card{
		deck.NewCard(deck.King, deck.Spades),
		deck.NewCard(deck.Ace, deck.Diamonds),
	})
	require.NoError(t, r.Hand(h))

	want := strings.Join([]string{
		Separator,
		"Player 1",
		"Card value: Hidden, Card suit: -",
		"Card value: Hidden, Card suit: -",
		"Current hand value 0",
		Separator,
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())

	out.Reset()
	h.RevealAll()
	require.NoError(t, r.Hand(h))
	assert.Contains(t, out.String(), "Card value: K, Card suit: S\n")
	assert.Contains(t, out.String(), "Card value: A, Card suit: D\n")
	assert.Contains(t, out.String(), "Current hand value 21\n")
}

func TestTableRendersDealerFirst(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)

	g, err := game.New(2, game.WithRNG(randutil.New(4)))
	require.NoError(t, err)
	require.NoError(t, r.Table(g))

	text := out.String()
	dealer := strings.Index(text, "Dealer\n")
	p1 := strings.Index(text, "Player 1\n")
	p2 := strings.Index(text, "Player 2\n")
	require.True(t, dealer >= 0 && p1 > dealer && p2 > p1, "hands rendered in order")
	assert.Equal(t, 6, strings.Count(text, Separator))
	assert.NotContains(t, text, "\x1b[", "plain renderer never emits escapes")
}

func TestDeckRendersDrawable(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)

	d := deck.New(randutil.New(1))
	_, err := d.Draw(49)
	require.NoError(t, err)
	require.NoError(t, r.Deck(d))

	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestResults(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)

	dealer := game.NewHand(game.DealerName, []deck.Card{
		deck.NewCard(deck.Ten, deck.Clubs).Revealed(),
		deck.NewCard(deck.Eight, deck.Clubs).Revealed(),
	})
	results := []game.Result{
		{Player: "Player 1", Value: 21, Blackjack: true, Outcome: game.Win},
		{Player: "Player 2", Value: 24, Bust: true, Outcome: game.Lose},
		{Player: "Player 3", Value: 18, Outcome: game.Push},
	}
	require.NoError(t, r.Results(dealer, results))

	assert.Equal(t, strings.Join([]string{
		"Dealer has 18",
		"Player 1 with 21 (blackjack): WIN",
		"Player 2 with 24 (bust): LOSE",
		"Player 3 with 18: PUSH",
	}, "\n")+"\n", out.String())
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)
	require.NoError(t, r.Prompt(ContinuePrompt))
	assert.Equal(t, "Press enter to continue\n", out.String())
}
