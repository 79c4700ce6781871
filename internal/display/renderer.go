// Package display draws cards, hands and round results as plain text lines,
// coloured when the output is a capable terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Separator is the border line above and below every hand
const Separator = "-------------------------------"

// ContinuePrompt is the acknowledgement gate shown between redraws
const ContinuePrompt = "Press enter to continue"

// Renderer writes the game screen to an output stream
type Renderer struct {
	out    io.Writer
	styles *Styles
}

// NewRenderer creates a renderer for out. The colour profile is detected from
// out unless an option such as termenv.WithProfile overrides it.
func NewRenderer(out io.Writer, opts ...termenv.OutputOption) *Renderer {
	r := lipgloss.NewRenderer(out, opts...)
	return &Renderer{
		out:    out,
		styles: NewStyles(r),
	}
}

// NewPlainRenderer creates a renderer that never emits colour codes
func NewPlainRenderer(out io.Writer) *Renderer {
	return NewRenderer(out, termenv.WithProfile(termenv.Ascii))
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}

// CardLine formats one card, e.g. "Card value: 10, Card suit: H"
func (r *Renderer) CardLine(c deck.Card) string {
	rank, suit := c.Face()
	switch {
	case c.Hidden():
		rank = r.styles.Hidden.Render(rank)
		suit = r.styles.Hidden.Render(suit)
	case c.Suit.IsRed():
		rank = r.styles.CardRed.Render(rank)
		suit = r.styles.CardRed.Render(suit)
	default:
		rank = r.styles.CardBlack.Render(rank)
		suit = r.styles.CardBlack.Render(suit)
	}
	return fmt.Sprintf("Card value: %s, Card suit: %s", rank, suit)
}

// Card writes a single card line
func (r *Renderer) Card(c deck.Card) error {
	return r.write(r.CardLine(c) + "\n")
}

// HandBlock formats a bordered hand: name, one line per card and the value
func (r *Renderer) HandBlock(h *game.Hand) string {
	name := r.styles.Player.Render(h.Name())
	if h.Name() == game.DealerName {
		name = r.styles.Dealer.Render(h.Name())
	}

	var b strings.Builder
	sep := r.styles.Separator.Render(Separator)
	b.WriteString(sep + "\n")
	b.WriteString(name + "\n")
	for _, c := range h.Cards() {
		b.WriteString(r.CardLine(c) + "\n")
	}
	fmt.Fprintf(&b, "Current hand value %s\n", r.styles.Value.Render(fmt.Sprint(h.Value())))
	b.WriteString(sep + "\n")
	return b.String()
}

// Hand writes a hand block
func (r *Renderer) Hand(h *game.Hand) error {
	return r.write(r.HandBlock(h))
}

// Table writes the dealer's hand followed by every player's hand
func (r *Renderer) Table(g *game.Game) error {
	if err := r.Hand(g.Dealer()); err != nil {
		return err
	}
	for _, p := range g.Players() {
		if err := r.Hand(p); err != nil {
			return err
		}
	}
	return nil
}

// Deck writes every card still drawable
func (r *Renderer) Deck(d *deck.Deck) error {
	var b strings.Builder
	for _, c := range d.Drawable() {
		b.WriteString(r.CardLine(c) + "\n")
	}
	return r.write(b.String())
}

// Prompt writes a prompt line
func (r *Renderer) Prompt(text string) error {
	return r.write(r.styles.Prompt.Render(text) + "\n")
}

// Title writes a banner line
func (r *Renderer) Title(text string) error {
	return r.write(r.styles.Title.Render(text) + "\n")
}

// Message writes a plain line of text
func (r *Renderer) Message(format string, a ...any) error {
	return r.write(fmt.Sprintf(format, a...) + "\n")
}

// Results writes the settlement of every player against the dealer
func (r *Renderer) Results(dealer *game.Hand, results []game.Result) error {
	var b strings.Builder
	dealerLine := fmt.Sprintf("Dealer has %d", dealer.Value())
	if dealer.IsBust() {
		dealerLine += " (bust)"
	}
	b.WriteString(r.styles.Dealer.Render(dealerLine) + "\n")

	for _, res := range results {
		detail := fmt.Sprint(res.Value)
		switch {
		case res.Blackjack:
			detail += " (blackjack)"
		case res.Bust:
			detail += " (bust)"
		}
		fmt.Fprintf(&b, "%s with %s: %s\n", res.Player, detail, r.outcome(res.Outcome))
	}
	return r.write(b.String())
}

func (r *Renderer) outcome(o game.Outcome) string {
	switch o {
	case game.Win:
		return r.styles.Win.Render(strings.ToUpper(o.String()))
	case game.Lose:
		return r.styles.Lose.Render(strings.ToUpper(o.String()))
	default:
		return r.styles.Push.Render(strings.ToUpper(o.String()))
	}
}
