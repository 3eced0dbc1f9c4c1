package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Classify a hand"`
	Compare  CompareCmd  `cmd:"" help:"Compare two hands"`
	Beat     BeatCmd     `cmd:"" help:"List every way a pool of cards beats a target"`
	Deal     DealCmd     `cmd:"" help:"Shuffle and deal hands"`
	Bench    BenchCmd    `cmd:"" help:"Measure enumeration throughput over seeded deals"`
	Explore  ExploreCmd  `cmd:"" help:"Explore a dealt hand interactively"`
	Version  VersionCmd  `cmd:"" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ddz"),
		kong.Description("Classify, compare and answer Dou Dizhu hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
