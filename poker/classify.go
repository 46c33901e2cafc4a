package poker

// Category enumerates the hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 9

var categoryNames = [NumCategories]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

// String returns a human-readable category name.
func (c Category) String() string {
	if c >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

const (
	straightRun uint16 = 0b11111
	wheelMask   uint16 = 1<<Ace | 1<<Five | 1<<Four | 1<<Three | 1<<Two
	// wheelKey drops the ace bit so the wheel sorts below 2-3-4-5-6 (0b11111).
	wheelKey uint16 = 0b01111
)

// TieBreakKey orders hands that share a Category. Components are compared
// left to right; unused trailing components are zero.
//
//	HighCard, Flush          {rank bitmap}
//	Straight, StraightFlush  {rank bitmap}, wheel uses 0b01111
//	OnePair                  {pair rank, bitmap of the other ranks}
//	TwoPair                  {high pair rank, low pair rank, kicker rank}
//	ThreeOfAKind             {trip rank, bitmap of the other ranks}
//	FullHouse                {trip rank, pair rank}
//	FourOfAKind              {quad rank, kicker rank}
type TieBreakKey [3]uint16

// Classify parses, encodes and classifies hand text.
func Classify(text string) (Category, TieBreakKey, error) {
	e, err := Encode(text)
	if err != nil {
		return 0, TieBreakKey{}, err
	}
	return ClassifyEncoded(e)
}

// ClassifyEncoded derives the category and tie-break key from an encoding.
// An encoding no valid hand can produce yields an *InvariantError.
func ClassifyEncoded(e Encoded) (Category, TieBreakKey, error) {
	straight, flush := e.IsStraight(), e.IsFlush()
	fail := func(reason string) (Category, TieBreakKey, error) {
		return 0, TieBreakKey{}, &InvariantError{Encoded: e, Straight: straight, Flush: flush, Reason: reason}
	}

	if reason := e.inconsistency(); reason != "" {
		return fail(reason)
	}

	switch e.Raw {
	case RawDistinct:
		switch {
		case straight && flush:
			return StraightFlush, e.straightKey(), nil
		case straight:
			return Straight, e.straightKey(), nil
		case flush:
			return Flush, TieBreakKey{e.Ranks}, nil
		default:
			return HighCard, TieBreakKey{e.Ranks}, nil
		}

	case RawOnePair:
		pair, ok := e.rankWithCount(2, 0)
		if !ok {
			return fail("no paired rank")
		}
		return OnePair, TieBreakKey{uint16(pair), e.Ranks &^ pair.bit()}, nil

	case RawTwoPair:
		high, ok := e.rankWithCount(2, 0)
		if !ok {
			return fail("no paired rank")
		}
		low, ok := e.rankWithCount(2, high.bit())
		if !ok {
			return fail("no second paired rank")
		}
		kicker, ok := e.rankWithCount(1, 0)
		if !ok {
			return fail("no kicker")
		}
		return TwoPair, TieBreakKey{uint16(high), uint16(low), uint16(kicker)}, nil

	case RawThreeOfKind:
		trip, ok := e.rankWithCount(3, 0)
		if !ok {
			return fail("no tripled rank")
		}
		return ThreeOfAKind, TieBreakKey{uint16(trip), e.Ranks &^ trip.bit()}, nil

	case RawFullHouse:
		trip, ok := e.rankWithCount(3, 0)
		if !ok {
			return fail("no tripled rank")
		}
		pair, ok := e.rankWithCount(2, 0)
		if !ok {
			return fail("no paired rank")
		}
		return FullHouse, TieBreakKey{uint16(trip), uint16(pair)}, nil

	case RawFourOfKind:
		quad, ok := e.rankWithCount(4, 0)
		if !ok {
			return fail("no quadrupled rank")
		}
		kicker, ok := e.rankWithCount(1, 0)
		if !ok {
			return fail("no kicker")
		}
		return FourOfAKind, TieBreakKey{uint16(quad), uint16(kicker)}, nil
	}

	return fail("raw score outside the valid set")
}

func (e Encoded) straightKey() TieBreakKey {
	if e.IsWheel() {
		return TieBreakKey{wheelKey}
	}
	return TieBreakKey{e.Ranks}
}
