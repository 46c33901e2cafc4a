package poker

import (
	"errors"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when fewer than five cards remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck. A nil rng falls back to the global
// source; pass a seeded one for reproducible deals.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the full deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if not enough remain
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:])
	d.next += n
	return cards
}

// DealHand deals the next five cards as a Hand.
func (d *Deck) DealHand() (Hand, error) {
	cards := d.Deal(HandSize)
	if cards == nil {
		return Hand{}, ErrDeckExhausted
	}
	return NewHand(cards...)
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
