package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "exusiai.dev/beatmap/cmd/app/cli"
	"exusiai.dev/beatmap/cmd/app/inspect"
	"exusiai.dev/beatmap/cmd/app/scan"
	"exusiai.dev/beatmap/internal/pkg/bininfo"
)

func Run() {
	cli.VersionPrinter = func(c *cli.Context) {
		_, _ = c.App.Writer.Write([]byte(c.App.Name + " " + bininfo.String() + "\n"))
	}

	app := &cli.App{
		Name:        "beatmap",
		Usage:       "load and inspect beatmap projects",
		Description: "Loads beatmap projects in either the legacy or the current difficulty format and reports them in the unified shape.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			inspect.Command(cliapp.DepsFn[inspect.CommandDeps]()),
			scan.Command(cliapp.DepsFn[scan.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
