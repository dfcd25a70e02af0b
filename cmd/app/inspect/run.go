package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"exusiai.dev/beatmap/internal/core/beatmap"
	"exusiai.dev/beatmap/internal/model"
)

func run(c *cli.Context, deps CommandDeps, dir string, format string, full bool) error {
	project := deps.BeatmapService.LoadProject(c.Context, dir)
	w := c.App.Writer

	if full {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(project), "failed to encode project")
	}

	summary := beatmap.Summarize(project)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(summary), "failed to encode summary")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return errors.Wrap(err, "failed to encode summary")
		}
		return errors.Wrap(enc.Close(), "failed to flush summary")
	default:
		return Render(w, summary)
	}
}

// Render prints summary as a human readable table.
func Render(w io.Writer, summary model.ProjectSummary) error {
	title := summary.SongName
	if summary.SongSubName != "" {
		title += " - " + summary.SongSubName
	}
	if title == "" {
		title = "(untitled)"
	}

	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "  by %s, mapped by %s, %s BPM\n",
		orDash(summary.SongAuthorName), orDash(summary.LevelAuthorName), humanize.Ftoa(summary.BeatsPerMinute))
	fmt.Fprintf(w, "  %s in %s\n", orDash(summary.InfoFilename), summary.Directory)
	if len(summary.Characteristics) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(summary.Characteristics, ", "))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHARACTERISTIC\tDIFFICULTY\tSCHEMA\tNOTES\tBOMBS\tWALLS\tARCS\tCHAINS\tEVENTS\tNJS\tSIZE\tFILE")
	for _, d := range summary.Difficulties {
		fmt.Fprintf(tw, "%s\t%s (%d)\t%s %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Characteristic,
			d.Rank, d.RankValue,
			d.Schema, d.Version,
			humanize.Comma(int64(d.ColorNoteCount)),
			humanize.Comma(int64(d.BombNoteCount)),
			humanize.Comma(int64(d.ObstacleCount)),
			humanize.Comma(int64(d.ArcCount)),
			humanize.Comma(int64(d.ChainCount)),
			humanize.Comma(int64(d.EventCount+d.BPMEventCount+d.RotationEventCount)),
			humanize.Ftoa(d.NoteJumpSpeed),
			humanize.Bytes(uint64(d.Size)),
			d.Filename,
		)
	}
	return errors.Wrap(tw.Flush(), "failed to write table")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
