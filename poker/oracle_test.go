package poker

import (
	"cmp"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toReference converts a hand into the reference evaluator's representation,
// where ranks run ace=1 through king=13.
func toReference(t *testing.T, h Hand) *[5]ph.Card {
	t.Helper()
	var out [5]ph.Card
	for i, c := range h {
		rank := ph.Rank(c.Rank) + 2
		if c.Rank == Ace {
			rank = 1
		}
		card, err := ph.MakeCard(ph.Suit(c.Suit), rank)
		require.NoError(t, err)
		out[i] = card
	}
	return &out
}

func TestCompareAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	d := NewDeck(newTestRand(2024))
	deal := func() Hand {
		if d.CardsRemaining() < HandSize {
			d.Shuffle()
		}
		h, err := d.DealHand()
		require.NoError(t, err)
		return h
	}

	for i := 0; i < 20000; i++ {
		a, b := deal(), deal()

		sa, err := EvaluateHand(a)
		require.NoError(t, err)
		sb, err := EvaluateHand(b)
		require.NoError(t, err)

		want := cmp.Compare(ph.Eval5(toReference(t, a)), ph.Eval5(toReference(t, b)))
		require.Equal(t, want, Compare(sa, sb), "%s vs %s", a, b)
	}
}

func TestWheelAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	wheel := MustParseHand("4S 5H 2D 3C AH")
	six := MustParseHand("5S 6H 4D 3C 2H")
	require.Less(t, ph.Eval5(toReference(t, wheel)), ph.Eval5(toReference(t, six)))

	sw, err := EvaluateHand(wheel)
	require.NoError(t, err)
	ss, err := EvaluateHand(six)
	require.NoError(t, err)
	require.Equal(t, -1, Compare(sw, ss))
}
