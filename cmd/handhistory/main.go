package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to HCL config file" default:"handhistory.hcl"`
	Verbose bool             `help:"Verbose logging"`

	Parse  ParseCmd  `cmd:"" help:"Parse hand histories and report per-hand details"`
	Stats  StatsCmd  `cmd:"" help:"Aggregate session statistics from hand histories"`
	Export ExportCmd `cmd:"" help:"Export parsed hands as TOML records"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handhistory"),
		kong.Description("Parse and analyze 6-max no-limit hold'em hand histories"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
