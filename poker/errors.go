package poker

import (
	"errors"
	"fmt"
)

// ErrMalformedHand is the root of every input rejection: bad token count,
// unknown rank or suit symbol, or a card repeated within one hand.
var ErrMalformedHand = errors.New("malformed hand")

var (
	ErrCardCount     = fmt.Errorf("%w: wrong number of cards", ErrMalformedHand)
	ErrInvalidCard   = fmt.Errorf("%w: invalid card", ErrMalformedHand)
	ErrInvalidRank   = fmt.Errorf("%w: invalid rank", ErrMalformedHand)
	ErrInvalidSuit   = fmt.Errorf("%w: invalid suit", ErrMalformedHand)
	ErrDuplicateCard = fmt.Errorf("%w: duplicate card", ErrMalformedHand)
)

// ErrInvariant marks an encoding that no valid five-card hand can produce. It
// points at an encoder/classifier mismatch, never at bad user input.
var ErrInvariant = errors.New("hand encoding invariant violated")

// InvariantError carries the offending encoding.
type InvariantError struct {
	Encoded  Encoded
	Straight bool
	Flush    bool
	Reason   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s (raw=%d ranks=%013b suits=%04b straight=%t flush=%t)",
		ErrInvariant, e.Reason, e.Encoded.Raw, e.Encoded.Ranks, e.Encoded.Suits, e.Straight, e.Flush)
}

// Is makes errors.Is(err, ErrInvariant) hold for every InvariantError.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// HandError reports which hand of a batch was rejected.
type HandError struct {
	Index int
	Text  string
	Err   error
}

func (e *HandError) Error() string {
	return fmt.Sprintf("hand %d (%q): %v", e.Index, e.Text, e.Err)
}

func (e *HandError) Unwrap() error {
	return e.Err
}
