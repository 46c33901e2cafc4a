package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

// Hand is an unordered set of exactly five distinct cards. The zero value is
// not a valid hand; build one with NewHand or ParseHand.
type Hand [HandSize]Card

// NewHand validates the cards and returns them as a Hand. It rejects anything
// other than five in-range cards with no repeats.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d, want %d", ErrCardCount, len(cards), HandSize)
	}

	var h Hand
	var seen uint64
	for i, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: rank=%d suit=%d", ErrInvalidCard, c.Rank, c.Suit)
		}
		bit := uint64(1) << c.index()
		if seen&bit != 0 {
			return Hand{}, fmt.Errorf("%w %s", ErrDuplicateCard, c)
		}
		seen |= bit
		h[i] = c
	}
	return h, nil
}

// String returns the hand in canonical notation, cards separated by spaces.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
