package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `help:"Show version"`
	Debug     bool             `short:"d" help:"Enable debug logging"`
	LogFormat string           `default:"console" enum:"console,json" help:"Log output format (console, json)"`

	Eval     EvalCmd     `cmd:"" help:"Evaluate hands against a community board"`
	Settle   SettleCmd   `cmd:"" help:"Settle a hand: build side pots and award them"`
	Simulate SimulateCmd `cmd:"" help:"Deal random hands through the settlement pipeline"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Settlement core for multiplayer poker: hand evaluation, side pots, payouts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := setupLogger(cli.Debug, cli.LogFormat == "json")
	err := ctx.Run(&logger)
	ctx.FatalIfErrorf(err)
}
