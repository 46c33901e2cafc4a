package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/handrank/internal/showdown"
)

// ShowdownCmd evaluates a showdown file and writes a TOML report.
type ShowdownCmd struct {
	File     string `arg:"" help:"Path to a TOML showdown file" type:"existingfile"`
	Out      string `short:"o" help:"Report path (default: print to stdout, or report_dir from config)" type:"path"`
	FailFast bool   `help:"Stop at the first showdown with a malformed hand"`
}

func (cmd *ShowdownCmd) Run(app *App) error {
	file, err := showdown.Load(cmd.File)
	if err != nil {
		return err
	}

	settings := app.Config.Showdown
	runner := showdown.NewRunner(app.Logger,
		showdown.WithWorkers(app.Config.Workers),
		showdown.WithFailFast(cmd.FailFast || settings.FailFast),
	)

	rep, err := runner.Run(app.Ctx, file)
	if err != nil {
		return err
	}

	out := cmd.reportPath(settings.ReportDir)
	if out == "" {
		if err := showdown.EncodeReport(app.Out, rep); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
		if err := showdown.WriteReport(out, rep); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		app.Logger.Info().Str("path", out).Str("run_id", rep.RunID).Msg("Report written")
		printSummary(app, rep)
	}

	if n := rep.Failed(); n > 0 {
		return fmt.Errorf("%d of %d showdowns failed", n, len(rep.Results))
	}
	return nil
}

func (cmd *ShowdownCmd) reportPath(dir string) string {
	if cmd.Out != "" || dir == "" {
		return cmd.Out
	}
	base := strings.TrimSuffix(filepath.Base(cmd.File), filepath.Ext(cmd.File))
	return filepath.Join(dir, base+".report.toml")
}

func printSummary(app *App, rep *showdown.Report) {
	for _, res := range rep.Results {
		if res.Error != "" {
			fmt.Fprintf(app.Out, "%s  %s\n", labelStyle.Render(res.Name), errorStyle.Render(res.Error))
			continue
		}
		fmt.Fprintf(app.Out, "%s  %s\n", labelStyle.Render(res.Name), winStyle.Render(strings.Join(res.Winners, " | ")))
	}
}
