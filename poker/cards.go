package poker

// Rank is a card face value, Two (0) through Ace (12). The value doubles as the
// rank's bit position in an occupancy bitmap.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits. The value is the suit's bit position.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "SHDC"
)

// String returns the single-character rank symbol ("T" for ten).
func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return rankChars[r : r+1]
}

func (r Rank) bit() uint16 {
	return 1 << r
}

// String returns the single-character suit symbol.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitChars[s : s+1]
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank < NumRanks && c.Suit < NumSuits
}

// String returns the card in the canonical two-character notation, e.g. "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// index is the card's position in a 52-bit set, grouped by rank.
func (c Card) index() uint {
	return uint(c.Rank)*NumSuits + uint(c.Suit)
}
