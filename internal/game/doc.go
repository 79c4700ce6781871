// Package game implements a blackjack table: hands with a cached value, the
// initial deal and the rules that play out a round.
//
// # Basic Usage
//
// Deal a table for two players and reveal it:
//
//	g, err := game.New(2)
//	if err != nil {
//	    // game.ErrInvalidPlayerCount or game.ErrDeckExhausted
//	}
//	g.RevealAll()
//	fmt.Println(g.Dealer().Value())
//
// Every card is dealt face down and a hand's value only counts revealed
// cards, so a freshly dealt table is worth 0 everywhere.
//
// # Deterministic Testing
//
// Inject the random source used for the shuffle:
//
//	g, err := game.New(3, game.WithRNG(randutil.New(42)))
//
// Or provide a deck, which is dealt in its current order:
//
//	g, err := game.New(1, game.WithDeck(deck.New(nil)))
//
// # Rules
//
// Aces count 11 unless WithSoftAces(true) is given, in which case they drop
// to 1 while the hand would otherwise bust. Hit, PlayDealer and Results play
// out and settle a round; the dealer draws below WithDealerStandsOn (17).
package game
