package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/handrank/poker"
)

// EncodeCmd dumps the bit-packed form of a hand.
type EncodeCmd struct {
	Hand string `arg:"" help:"Hand such as '4S 5H 6D 7C 8H' (quoted)"`
}

func (cmd *EncodeCmd) Run(app *App) error {
	h, err := poker.ParseHand(cmd.Hand)
	if err != nil {
		return err
	}
	e := poker.EncodeHand(h)

	score, err := poker.EvaluateHand(h)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "%s %s\n", labelStyle.Render("Score:"), categoryStyle.Render(score.Category.String()))
	writeEncoded(app.Out, e)
	return nil
}

// writeEncoded prints each field of e under a legend, ace first.
func writeEncoded(w io.Writer, e poker.Encoded) {
	var legend, ranks, tally strings.Builder
	for r := poker.Ace; ; r-- {
		fmt.Fprintf(&legend, "%-5s", r)
		fmt.Fprintf(&ranks, "%-5d", e.Ranks>>r&1)
		fmt.Fprintf(&tally, "%04b ", e.Tally>>(uint(r)*4)&0xf)
		if r == poker.Two {
			break
		}
	}

	fmt.Fprintf(w, "%-7s%s\n", "", dimStyle.Render(strings.TrimRight(legend.String(), " ")))
	fmt.Fprintf(w, "%s  %s\n", labelStyle.Render("ranks"), strings.TrimRight(ranks.String(), " "))
	fmt.Fprintf(w, "%s  %s\n", labelStyle.Render("tally"), strings.TrimRight(tally.String(), " "))
	fmt.Fprintf(w, "%-7s%s\n", "", dimStyle.Render("CDHS"))
	fmt.Fprintf(w, "%s  %04b\n", labelStyle.Render("suits"), e.Suits)
	fmt.Fprintf(w, "%s    %d\n", labelStyle.Render("raw"), e.Raw)
}
