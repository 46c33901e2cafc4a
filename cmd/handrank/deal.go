package main

import (
	"fmt"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

// DealCmd deals random hands, reshuffling whenever the deck runs low.
type DealCmd struct {
	Count    int    `short:"n" help:"Number of hands to deal" default:"1"`
	Seed     *int64 `help:"Random seed for reproducible deals"`
	Classify bool   `help:"Print each hand's category"`
}

func (cmd *DealCmd) Run(app *App) error {
	if cmd.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cmd.Count)
	}

	seed := randutil.Seed(cmd.Seed)
	app.Logger.Info().Int64("seed", seed).Int("count", cmd.Count).Msg("Dealing hands")

	d := poker.NewDeck(randutil.New(seed))
	for i := 0; i < cmd.Count; i++ {
		if d.CardsRemaining() < poker.HandSize {
			d.Shuffle()
		}
		h, err := d.DealHand()
		if err != nil {
			return err
		}

		if !cmd.Classify {
			fmt.Fprintln(app.Out, h)
			continue
		}
		score, err := poker.EvaluateHand(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.Out, "%s  %s\n", handStyle.Render(h.String()), categoryStyle.Render(score.Category.String()))
	}
	return nil
}
