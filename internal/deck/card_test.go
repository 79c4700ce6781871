package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFromCode(t *testing.T) {
	tests := []struct {
		code   int
		glyph  string
		points int
	}{
		{2, "2", 2},
		{9, "9", 9},
		{10, "10", 10},
		{11, "J", 10},
		{12, "Q", 10},
		{13, "K", 10},
		{14, "A", 11},
	}

	for _, tt := range tests {
		t.Run(tt.glyph, func(t *testing.T) {
			rank, err := RankFromCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.glyph, rank.String())
			assert.Equal(t, tt.points, rank.Points())
		})
	}

	for _, code := range []int{-1, 0, 1, 15, 100} {
		_, err := RankFromCode(code)
		assert.True(t, errors.Is(err, ErrInvalidRank), "code %d", code)
	}
}

func TestSuitFromCode(t *testing.T) {
	glyphs := []string{"C", "D", "H", "S"}
	for code, glyph := range glyphs {
		suit, err := SuitFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, glyph, suit.String())
	}

	hearts, err := SuitFromCode(2)
	require.NoError(t, err)
	assert.Equal(t, Hearts, hearts)
	assert.True(t, hearts.IsRed())

	for _, code := range []int{-1, 4, 9} {
		_, err := SuitFromCode(code)
		assert.ErrorIs(t, err, ErrInvalidSuit)
	}
}

func TestCardReveal(t *testing.T) {
	card := NewCard(Ace, Spades)

	assert.True(t, card.Hidden())
	assert.Equal(t, "Card value: Hidden, Card suit: -", card.String())
	assert.Equal(t, 0, card.Points())

	card.Reveal()
	assert.False(t, card.Hidden())
	assert.Equal(t, "Card value: A, Card suit: S", card.String())
	assert.Equal(t, 11, card.Points())

	// revealing again changes nothing
	card.Reveal()
	assert.False(t, card.Hidden())
	assert.Equal(t, "Card value: A, Card suit: S", card.String())
}

func TestCardRevealedCopy(t *testing.T) {
	card := NewCard(Ten, Hearts)
	up := card.Revealed()

	assert.True(t, card.Hidden(), "original stays hidden")
	assert.False(t, up.Hidden())
	assert.Equal(t, "10H", up.Short())
	assert.Equal(t, "??", card.Short())
	assert.True(t, card.Same(up))
}
