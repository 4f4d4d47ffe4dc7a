package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run multi-deal simulations and report the win rate"`
	Advise   AdviseCmd        `cmd:"" help:"Score the legal leads for a hand by Monte Carlo simulation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("whist"),
		kong.Description("Trick-taking card game engine with a Monte Carlo lead advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
