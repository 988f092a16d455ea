package main

import (
	"git.home.luguber.info/inful/mdsummary/cmd/mdsummary/commands"
	"github.com/alecthomas/kong"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mdsummary"),
		kong.Description("Regenerate the SUMMARY.md navigation index from the src documentation tree"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
