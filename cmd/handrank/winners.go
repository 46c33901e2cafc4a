package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lox/handrank/poker"
)

// WinnersCmd prints the hands that share the best score. Hands are read one
// per line from stdin when none are given as arguments.
type WinnersCmd struct {
	Hands   []string `arg:"" optional:"" help:"Hands such as '4S 5H 6D 7C 8H' (quoted)"`
	Workers int      `short:"w" help:"Goroutines for large batches (0 = config value)"`
}

func (cmd *WinnersCmd) Run(app *App) error {
	hands := cmd.Hands
	if len(hands) == 0 {
		var err error
		if hands, err = readLines(app); err != nil {
			return err
		}
	}

	workers := cmd.Workers
	if workers == 0 {
		workers = app.Config.Workers
	}

	var (
		winners []string
		err     error
	)
	if workers > 1 {
		winners, err = poker.WinnersParallel(app.Ctx, hands, workers)
	} else {
		winners, err = poker.Winners(hands)
	}
	if err != nil {
		return err
	}

	app.Logger.Debug().
		Int("hands", len(hands)).
		Int("winners", len(winners)).
		Int("workers", workers).
		Msg("Winners selected")

	for _, w := range winners {
		fmt.Fprintln(app.Out, winStyle.Render(w))
	}
	return nil
}

func readLines(app *App) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(app.In)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hands: %w", err)
	}
	return lines, nil
}
