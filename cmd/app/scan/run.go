package scan

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"

	"exusiai.dev/beatmap/internal/model"
)

func run(c *cli.Context, deps CommandDeps, root string, format string, output string) error {
	summaries := deps.BeatmapService.Scan(c.Context, root)

	var w io.Writer = c.App.Writer
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "failed to create manifest file")
		}
		defer f.Close()
		w = f
	}

	if err := Write(w, format, summaries); err != nil {
		return err
	}

	if output != "" {
		log.Info().
			Str("evt.name", "scan.manifest.written").
			Str("output", output).
			Int("projects", len(summaries)).
			Msg("manifest written")
	}
	return nil
}

// Write encodes the manifest in the given format.
func Write(w io.Writer, format string, summaries []model.ProjectSummary) error {
	switch format {
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		return errors.Wrap(enc.Encode(summaries), "failed to encode manifest")
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(summaries), "failed to encode manifest")
	}
}
