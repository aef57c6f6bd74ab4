package holdem

import rand "math/rand/v2"

// Deck represents a single-hand deck of playing cards. Cards are consumed
// from the top (end of the slice) and never re-dealt within a hand; the
// table discards the deck and builds a fresh one every hand.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck in canonical order.
func NewDeck() *Deck {
	deck := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck.cards = append(deck.cards, NewCard(suit, rank))
		}
	}
	return deck
}

// Shuffle permutes the deck with Fisher-Yates using the provided source.
// The RNG is injected so callers control randomness; a verifiable generator
// can be swapped in without touching the engine.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if card, ok := d.Deal(); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Burn discards the top card before a street is dealt.
func (d *Deck) Burn() {
	d.Deal()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
