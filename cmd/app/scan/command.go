package scan

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/core/beatmap"
)

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

var formats = []string{FormatJSON, FormatMsgpack}

type CommandDeps struct {
	fx.In

	BeatmapService *beatmap.Service
}

func Command(depsFn func() (CommandDeps, func())) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "load every project under a library root and print a manifest",
		ArgsUsage: "<library root>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "manifest format: json or msgpack",
				Value:   FormatJSON,
			},
			&cli.PathFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the manifest to a file instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one library root", 2)
			}
			format := c.String("format")
			if !lo.Contains(formats, format) {
				return errors.Errorf("unknown format %q", format)
			}

			deps, stop := depsFn()
			defer stop()

			return run(c, deps, c.Args().First(), format, c.Path("output"))
		},
	}
}
