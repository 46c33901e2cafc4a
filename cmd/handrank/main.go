package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"handrank.hcl" type:"path"`
	Debug    bool             `help:"Enable debug logging"`
	JSONLogs bool             `name:"json-logs" help:"Write structured JSON logs"`
	NoColor  bool             `name:"no-color" help:"Disable colored output"`

	Classify ClassifyCmd `cmd:"" help:"Classify five-card hands"`
	Winners  WinnersCmd  `cmd:"" help:"Print the winning hands of a batch"`
	Encode   EncodeCmd   `cmd:"" help:"Show the bit-packed encoding of a hand"`
	Deal     DealCmd     `cmd:"" help:"Deal random hands from a shuffled deck"`
	Showdown ShowdownCmd `cmd:"" help:"Evaluate a TOML showdown file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Five-card poker hand classifier and comparator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := NewApp(&cli, os.Stdin, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
