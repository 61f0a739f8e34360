package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docpress/cmd/docpress/commands"
	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("docpress"),
		kong.Description("Inspect and check a docpress documentation site"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = kctx.Run(&commands.Global{Logger: slog.Default()}, cli)
	dberrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
