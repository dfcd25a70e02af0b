package beatmap

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"exusiai.dev/beatmap/internal/model"
	"exusiai.dev/beatmap/internal/pkg/async"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/util/normalize"
)

// entry is a difficulty descriptor together with the characteristic it belongs to.
type entry struct {
	characteristic string
	descriptor     model.DifficultyBeatmap
}

// FindInfo returns the first configured Info file name present in dir.
func (s *Service) FindInfo(dir string) (string, bool) {
	for _, name := range s.Config.InfoFileNames {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err == nil && fi.Mode().IsRegular() {
			return name, true
		}
	}
	return "", false
}

// LoadProject loads the Info document of dir and every difficulty it lists. Difficulties
// are loaded concurrently but keep the order of the Info document. A difficulty that
// fails to load is an empty one; it never fails the project.
func (s *Service) LoadProject(ctx context.Context, dir string) model.Project {
	defer observeSince(kindProject, time.Now())
	ctx = flog.WithLoadID(ctx, loadIDField)
	ctx = flog.With(ctx, "project", dir)
	ctx, span := tracer.Start(ctx, "beatmap.project.load")
	defer span.End()

	project := model.Project{
		Directory:    dir,
		Difficulties: []*model.Difficulty{},
	}

	name, ok := s.FindInfo(dir)
	if !ok {
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.project.noinfo").
			Strs("candidates", s.Config.InfoFileNames).
			Msg("no info document in project directory")
		project.Info = normalize.Info(model.BeatmapInfo{})
		return project
	}

	project.InfoFilename = name
	project.Info = s.LoadInfo(ctx, filepath.Join(dir, name))

	entries := lo.FlatMap(project.Info.DifficultyBeatmapSets, func(set model.DifficultyBeatmapSet, _ int) []entry {
		return lo.Map(set.DifficultyBeatmaps, func(d model.DifficultyBeatmap, _ int) entry {
			return entry{characteristic: set.BeatmapCharacteristicName, descriptor: d}
		})
	})

	// each goroutine writes its own slot only
	project.Difficulties = make([]*model.Difficulty, len(entries))

	var g errgroup.Group
	g.SetLimit(lo.Max([]int{s.Config.MaxConcurrentLoads, 1}))
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			d := s.LoadDifficulty(ctx, dir, e.descriptor)
			d.Characteristic = e.characteristic
			project.Difficulties[i] = d
			return nil
		})
	}
	// loads never fail, they degrade to empty difficulties
	_ = g.Wait()

	flog.DebugFrom(ctx).
		Str("evt.name", "beatmap.project.loaded").
		Int("difficulties", len(project.Difficulties)).
		Msg("project loaded")

	return project
}

// Scan loads every project directly under root and returns their summaries ordered by
// directory name. Directories without an Info document are skipped. A missing root is
// an empty library.
func (s *Service) Scan(ctx context.Context, root string) []model.ProjectSummary {
	ctx, span := tracer.Start(ctx, "beatmap.scan")
	defer span.End()

	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.scan.noroot").
			Str("root", root).
			Msg("library root does not exist, nothing to scan")
		return []model.ProjectSummary{}
	} else if err != nil {
		flog.ErrorFrom(ctx).
			Str("evt.name", "beatmap.scan.failed").
			Str("root", root).
			Err(err).
			Msg("failed to list library root")
		return []model.ProjectSummary{}
	}

	dirs := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		if !e.IsDir() {
			return "", false
		}
		dir := filepath.Join(root, e.Name())
		_, ok := s.FindInfo(dir)
		return dir, ok
	})
	slices.Sort(dirs)

	summaries, _ := async.Map(dirs, s.Config.MaxConcurrentLoads, func(dir string) (model.ProjectSummary, error) {
		return Summarize(s.LoadProject(ctx, dir)), nil
	})

	flog.InfoFrom(ctx).
		Str("evt.name", "beatmap.scan.done").
		Str("root", root).
		Int("projects", len(summaries)).
		Msg("library scanned")

	return summaries
}
