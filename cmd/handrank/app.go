package main

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/handrank/cmd/handrank/shared"
	"github.com/lox/handrank/internal/config"
)

// App is bound into every command's Run method.
type App struct {
	Ctx    context.Context
	Config *config.Config
	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer
}

// NewApp loads the config file and applies the global flags over it.
func NewApp(cli *CLI, in io.Reader, out, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.Debug {
		cfg.LogLevel = "debug"
	}
	if cli.JSONLogs {
		cfg.LogFormat = config.FormatJSON
	}
	if cli.NoColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := shared.NewLogger(logOut, cfg.Level(), cfg.LogFormat, cfg.NoColor)
	logger.Debug().Str("config", cli.Config).Int("workers", cfg.Workers).Msg("Configuration loaded")

	return &App{
		Ctx:    shared.SetupSignalHandlerWithLogger(logger),
		Config: cfg,
		Logger: logger,
		In:     in,
		Out:    out,
	}, nil
}
