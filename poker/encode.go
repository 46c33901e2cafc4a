package poker

import "math/bits"

const (
	tallyWidth = 4
	tallyMask  = 1<<tallyWidth - 1
)

// Encoded is the bit-packed form of a hand.
//
// Ranks has bit r set when at least one card of rank r is present, Suits has
// bit s set when suit s is present. Tally holds a 4-bit slot per rank; each card
// of that rank shifts one more set bit into the slot, so a slot's value is
// 2^count-1. Raw is the sum of those slot values over all ranks, which singles
// out the shape of the hand: 5 (1+1+1+1+1), 6 (2+1+1+1), 7 (2+2+1), 9 (3+1+1),
// 10 (3+2) or 16 (4+1).
type Encoded struct {
	Ranks uint16
	Suits uint8
	Tally uint64
	Raw   uint8
}

// Raw score of each hand shape.
const (
	RawDistinct    uint8 = 5
	RawOnePair     uint8 = 6
	RawTwoPair     uint8 = 7
	RawThreeOfKind uint8 = 9
	RawFullHouse   uint8 = 10
	RawFourOfKind  uint8 = 16
)

// Encode parses hand text and encodes it.
func Encode(text string) (Encoded, error) {
	h, err := ParseHand(text)
	if err != nil {
		return Encoded{}, err
	}
	return EncodeHand(h), nil
}

// EncodeHand folds the five cards into an Encoded in a single pass. Raw grows
// by the change in the rank's slot value, old+1, so no second pass over the
// tally is needed.
func EncodeHand(h Hand) Encoded {
	var e Encoded
	for _, c := range h {
		old := e.slot(c.Rank)
		shift := uint(c.Rank) * tallyWidth

		e.Ranks |= c.Rank.bit()
		e.Suits |= 1 << c.Suit
		e.Tally |= uint64(old<<1|1) << shift
		e.Raw += old + 1
	}
	return e
}

func (e Encoded) slot(r Rank) uint8 {
	return uint8(e.Tally>>(uint(r)*tallyWidth)) & tallyMask
}

// Count returns how many cards of rank r the hand holds (0-4).
func (e Encoded) Count(r Rank) int {
	return bits.OnesCount8(e.slot(r))
}

// IsStraight reports five consecutive ranks, including the ace-low wheel. The
// ace sits on the highest rank bit, so A-2-3-4-5 needs its own mask.
func (e Encoded) IsStraight() bool {
	if e.Ranks == 0 {
		return false
	}
	return e.Ranks>>bits.TrailingZeros16(e.Ranks) == straightRun || e.Ranks == wheelMask
}

// IsWheel reports the A-2-3-4-5 straight.
func (e Encoded) IsWheel() bool {
	return e.Ranks == wheelMask
}

// IsFlush reports that exactly one suit is present.
func (e Encoded) IsFlush() bool {
	return bits.OnesCount8(e.Suits) == 1
}

// inconsistency describes why e cannot encode five distinct cards, or returns
// "" for a consistent encoding. Each occupied tally slot must be a run of ones
// matching a set rank bit, the slots must hold five cards in total, Raw must
// equal the sum of the slot values, and one to four suit bits must be set.
func (e Encoded) inconsistency() string {
	if e.Suits == 0 || e.Suits>>NumSuits != 0 {
		return "suit bitmap out of range"
	}
	if e.Ranks>>NumRanks != 0 || e.Tally>>(NumRanks*tallyWidth) != 0 {
		return "bits set above the ace"
	}

	cards, raw := 0, 0
	for r := range Rank(NumRanks) {
		s := e.slot(r)
		if s&(s+1) != 0 {
			return "tally slot is not a run of ones"
		}
		if (s != 0) != (e.Ranks&r.bit() != 0) {
			return "tally disagrees with rank bitmap"
		}
		cards += bits.OnesCount8(s)
		raw += int(s)
	}
	if cards != HandSize {
		return "tally does not hold five cards"
	}
	if raw != int(e.Raw) {
		return "raw score disagrees with tally"
	}
	return ""
}

// rankWithCount scans the set rank bits from highest to lowest, skipping the
// ranks in exclude, and returns the first rank holding exactly n cards.
func (e Encoded) rankWithCount(n int, exclude uint16) (Rank, bool) {
	for ranks := e.Ranks &^ exclude; ranks != 0; {
		r := Rank(bits.Len16(ranks) - 1)
		if e.Count(r) == n {
			return r, true
		}
		ranks &^= r.bit()
	}
	return 0, false
}
