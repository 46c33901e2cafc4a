package poker

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card token.
// Format: [Rank][Suit], e.g. "AS", "TD", "9h".
// Ranks: 2-9, T, J, Q, K, A ("10" is accepted as an alias for T)
// Suits: S (spades), H (hearts), D (diamonds), C (clubs)
// Lowercase symbols are accepted.
func ParseCard(s string) (Card, error) {
	var rankPart string
	switch {
	case len(s) == 2:
		rankPart = s[:1]
	case len(s) == 3 && s[:2] == "10":
		rankPart = s[:2]
	default:
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseHand parses five whitespace-separated card tokens ("4S 5H 6D 7C 8H").
// A single ten-character token is read as five fixed-width two-character slots
// ("4S5H6D7C8H").
func ParseHand(text string) (Hand, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 1 && len(tokens[0]) == HandSize*2 {
		tokens = splitSlots(tokens[0])
	}
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d, want %d", ErrCardCount, len(tokens), HandSize)
	}

	cards := make([]Card, 0, HandSize)
	for _, tok := range tokens {
		card, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, card)
	}

	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(text string) Hand {
	h, err := ParseHand(text)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", text, err))
	}
	return h
}

func splitSlots(s string) []string {
	slots := make([]string, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		slots = append(slots, s[i:i+2])
	}
	return slots
}

func parseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	switch s[0] {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w '%c'", ErrInvalidRank, s[0])
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'S', 's':
		return Spades, nil
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'C', 'c':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w '%c'", ErrInvalidSuit, c)
	}
}
