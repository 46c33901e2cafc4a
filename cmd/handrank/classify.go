package main

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/samber/lo"

	"github.com/lox/handrank/poker"
)

// ClassifyCmd prints the category and tie-break key of each hand.
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands such as '4S 5H 6D 7C 8H' (quoted)"`
	Key   bool     `short:"k" help:"Print the raw tie-break key"`
}

func (cmd *ClassifyCmd) Run(app *App) error {
	for i, text := range cmd.Hands {
		score, err := poker.Evaluate(text)
		if err != nil {
			return &poker.HandError{Index: i, Text: text, Err: err}
		}

		line := fmt.Sprintf("%s  %s  %s",
			handStyle.Render(text),
			categoryStyle.Render(score.Category.String()),
			describe(score))
		if cmd.Key {
			line += "  " + dimStyle.Render(fmt.Sprintf("%v", score.Key))
		}
		fmt.Fprintln(app.Out, line)

		app.Logger.Debug().Str("hand", text).Stringer("score", score).Msg("Classified")
	}
	return nil
}

var rankNames = [poker.NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func plural(r poker.Rank) string {
	if r == poker.Six {
		return "Sixes"
	}
	return rankNames[r] + "s"
}

// ranksOf lists the ranks set in mask, highest first.
func ranksOf(mask uint16) []poker.Rank {
	var out []poker.Rank
	for mask != 0 {
		r := poker.Rank(bits.Len16(mask) - 1)
		out = append(out, r)
		mask &^= 1 << r
	}
	return out
}

func rankList(mask uint16) string {
	return strings.Join(lo.Map(ranksOf(mask), func(r poker.Rank, _ int) string {
		return r.String()
	}), " ")
}

// describe renders a score's tie-break key in words.
func describe(s poker.Score) string {
	k := s.Key
	switch s.Category {
	case poker.HighCard, poker.Flush:
		return rankList(k[0])
	case poker.Straight, poker.StraightFlush:
		// the wheel's key has no ace bit, so its top rank is the five
		return rankNames[ranksOf(k[0])[0]] + " high"
	case poker.OnePair:
		return fmt.Sprintf("pair of %s, kickers %s", plural(poker.Rank(k[0])), rankList(k[1]))
	case poker.TwoPair:
		return fmt.Sprintf("%s and %s, %s kicker", plural(poker.Rank(k[0])), plural(poker.Rank(k[1])), poker.Rank(k[2]))
	case poker.ThreeOfAKind:
		return fmt.Sprintf("three %s, kickers %s", plural(poker.Rank(k[0])), rankList(k[1]))
	case poker.FullHouse:
		return fmt.Sprintf("%s full of %s", plural(poker.Rank(k[0])), plural(poker.Rank(k[1])))
	case poker.FourOfAKind:
		return fmt.Sprintf("four %s, %s kicker", plural(poker.Rank(k[0])), poker.Rank(k[1]))
	default:
		return ""
	}
}
