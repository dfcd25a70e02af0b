package inspect

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/core/beatmap"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var formats = []string{FormatText, FormatJSON, FormatYAML}

type CommandDeps struct {
	fx.In

	BeatmapService *beatmap.Service
}

func Command(depsFn func() (CommandDeps, func())) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "load a single project and print what was read",
		ArgsUsage: "<project directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, json or yaml",
				Value:   FormatText,
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "print every loaded entity instead of a summary (json only)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one project directory", 2)
			}
			format := c.String("format")
			if !lo.Contains(formats, format) {
				return errors.Errorf("unknown format %q", format)
			}
			if c.Bool("full") && format != FormatJSON {
				return errors.New("--full requires --format json")
			}

			deps, stop := depsFn()
			defer stop()

			return run(c, deps, c.Args().First(), format, c.Bool("full"))
		},
	}
}
