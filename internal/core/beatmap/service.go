package beatmap

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/zeebo/xxh3"

	"exusiai.dev/beatmap/internal/app/appconfig"
	"exusiai.dev/beatmap/internal/model"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/observability"
	"exusiai.dev/beatmap/internal/util"
	"exusiai.dev/beatmap/internal/util/normalize"
)

const loadIDField = "loadId"

const (
	kindInfo       = "info"
	kindDifficulty = "difficulty"
	kindProject    = "project"
)

// Service loads beatmap projects from disk. It holds no state between calls, so a
// single instance may serve any number of concurrent loads.
type Service struct {
	Config   *appconfig.Config
	Validate *validator.Validate
}

func NewService(conf *appconfig.Config, validate *validator.Validate) *Service {
	return &Service{
		Config:   conf,
		Validate: validate,
	}
}

func observeSince(kind string, start time.Time) {
	observability.LoadDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// LoadInfo reads the Info document at path. It never fails: an absent, unreadable or
// malformed file yields an empty Info.
func (s *Service) LoadInfo(ctx context.Context, path string) model.BeatmapInfo {
	defer observeSince(kindInfo, time.Now())
	ctx = flog.WithLoadID(ctx, loadIDField)
	ctx, span := tracer.Start(ctx, "beatmap.info.load")
	defer span.End()

	text := ReadFile(ctx, path)
	if text == "" {
		return normalize.Info(model.BeatmapInfo{})
	}

	info := ParseInfoFromJSON(ctx, text)
	util.Lint(ctx, s.Validate, &info)

	return info
}

// LoadDifficulty reads the difficulty file descriptor points at, relative to dir. The
// result is always in the unified shape, whatever schema the file was written in.
// A file name that reaches outside dir is not read.
func (s *Service) LoadDifficulty(ctx context.Context, dir string, descriptor model.DifficultyBeatmap) *model.Difficulty {
	defer observeSince(kindDifficulty, time.Now())
	ctx = flog.WithLoadID(ctx, loadIDField)
	ctx = flog.With(ctx, "difficulty", descriptor.Difficulty)
	ctx, span := tracer.Start(ctx, "beatmap.difficulty.load")
	defer span.End()

	var d *model.Difficulty
	if descriptor.BeatmapFilename == "" {
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.difficulty.nofile").
			Msg("difficulty has no file name, using an empty difficulty")
		d = emptyDifficulty()
	} else if !util.IsBeatmapFilename(descriptor.BeatmapFilename) {
		observability.LoadFailures.WithLabelValues(loaderr.CodeFileUnreadable).Inc()
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.difficulty.badfile").
			Err(loaderr.ErrFileUnreadable.WithMessage("%q is not a file name inside the project directory", descriptor.BeatmapFilename)).
			Msg("difficulty file name is a path, using an empty difficulty")
		d = emptyDifficulty()
	} else if text := ReadFile(ctx, filepath.Join(dir, descriptor.BeatmapFilename)); text == "" {
		d = emptyDifficulty()
	} else {
		d = ParseDifficultyFromJSON(ctx, text)
	}

	d.ApplyDescriptor(descriptor)
	return d
}

// ParseInfoFromJSON is LoadInfo without the file access.
func ParseInfoFromJSON(ctx context.Context, text string) model.BeatmapInfo {
	return normalize.Info(ParseInfo(ctx, text))
}

// ParseDifficultyFromJSON is LoadDifficulty without the file access and the descriptor.
func ParseDifficultyFromJSON(ctx context.Context, text string) *model.Difficulty {
	doc := Resolve(ctx, text)
	unified, version := Unify(ctx, doc)

	return &model.Difficulty{
		Source:        doc.Schema(),
		SourceVersion: version,
		Fingerprint:   Fingerprint(text),
		Size:          len(text),
		Difficulty:    *unified,
	}
}

func emptyDifficulty() *model.Difficulty {
	return &model.Difficulty{Difficulty: *normalize.V3(nil)}
}

// Fingerprint identifies the raw content of a document. Empty content has none.
func Fingerprint(text string) string {
	if text == "" {
		return ""
	}
	return strconv.FormatUint(xxh3.HashString(text), 16)
}
