package poker

import (
	"cmp"
	"fmt"
	"slices"
)

// Score is a classified hand: its category plus the key that orders hands
// within that category.
type Score struct {
	Category Category
	Key      TieBreakKey
}

// Evaluate parses, encodes and classifies hand text into a Score.
func Evaluate(text string) (Score, error) {
	cat, key, err := Classify(text)
	if err != nil {
		return Score{}, err
	}
	return Score{Category: cat, Key: key}, nil
}

// EvaluateHand classifies an already parsed hand.
func EvaluateHand(h Hand) (Score, error) {
	cat, key, err := ClassifyEncoded(EncodeHand(h))
	if err != nil {
		return Score{}, err
	}
	return Score{Category: cat, Key: key}, nil
}

// Compare returns -1 if a is weaker than b, 0 if they tie, 1 if a is stronger.
// Category decides first, then the key components left to right.
func Compare(a, b Score) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	for i := range a.Key {
		if c := cmp.Compare(a.Key[i], b.Key[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Beats returns true if s is strictly stronger than other
func (s Score) Beats(other Score) bool {
	return Compare(s, other) > 0
}

// Ties returns true if neither score beats the other
func (s Score) Ties(other Score) bool {
	return Compare(s, other) == 0
}

func (s Score) String() string {
	return fmt.Sprintf("%s %v", s.Category, s.Key)
}

// CompareHands evaluates two hand texts and compares them.
func CompareHands(a, b string) (int, error) {
	sa, err := Evaluate(a)
	if err != nil {
		return 0, &HandError{Index: 0, Text: a, Err: err}
	}
	sb, err := Evaluate(b)
	if err != nil {
		return 0, &HandError{Index: 1, Text: b, Err: err}
	}
	return Compare(sa, sb), nil
}

// Winners returns the hands that tie for best, in input order. The returned
// strings are the caller's own. The first malformed hand aborts the batch
// with a *HandError.
func Winners(hands []string) ([]string, error) {
	idx, err := WinnerIndices(hands)
	if err != nil {
		return nil, err
	}
	return pick(hands, idx), nil
}

// WinnerIndices runs the same scan as Winners and returns input positions.
func WinnerIndices(hands []string) ([]int, error) {
	ws, err := scan(hands, 0)
	if err != nil {
		return nil, err
	}
	return ws.indices, nil
}

// BestIndices returns the positions of the scores that tie for best, in
// input order. It is the scan behind Winners for hands already scored.
func BestIndices(scores []Score) []int {
	var ws winnerSet
	for i, s := range scores {
		ws.add(i, s)
	}
	return ws.indices
}

// winnerSet accumulates a running maximum together with every index that
// reached it. Two sets merge associatively, which lets chunks of a batch be
// reduced independently.
type winnerSet struct {
	best    Score
	indices []int
}

func (w *winnerSet) add(i int, s Score) {
	if len(w.indices) == 0 {
		w.best = s
		w.indices = append(w.indices, i)
		return
	}
	switch Compare(s, w.best) {
	case 1:
		w.best = s
		w.indices = append(w.indices[:0], i)
	case 0:
		w.indices = append(w.indices, i)
	}
}

func (w *winnerSet) merge(o winnerSet) {
	if len(o.indices) == 0 {
		return
	}
	if len(w.indices) == 0 {
		w.best = o.best
		w.indices = append(w.indices[:0], o.indices...)
		return
	}
	switch Compare(o.best, w.best) {
	case 1:
		w.best = o.best
		w.indices = append(w.indices[:0], o.indices...)
	case 0:
		w.indices = append(w.indices, o.indices...)
		slices.Sort(w.indices)
	}
}

// scan classifies hands in order, offsetting reported indices by base.
func scan(hands []string, base int) (winnerSet, error) {
	var ws winnerSet
	for i, text := range hands {
		s, err := Evaluate(text)
		if err != nil {
			return winnerSet{}, &HandError{Index: base + i, Text: text, Err: err}
		}
		ws.add(base+i, s)
	}
	return ws, nil
}

func pick(hands []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = hands[j]
	}
	return out
}
