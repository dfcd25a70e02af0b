package beatmap

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"exusiai.dev/beatmap/internal/model"
)

// Summarize reduces a loaded project to its manifest entry.
func Summarize(p model.Project) model.ProjectSummary {
	summary := model.ProjectSummary{
		Directory:       p.Directory,
		InfoFilename:    p.InfoFilename,
		SongName:        p.Info.SongName,
		SongSubName:     p.Info.SongSubName,
		SongAuthorName:  p.Info.SongAuthorName,
		LevelAuthorName: p.Info.LevelAuthorName,
		BeatsPerMinute:  p.Info.BeatsPerMinute,
		Characteristics: []string{},
	}

	linq.From(p.Info.DifficultyBeatmapSets).
		SelectT(func(set model.DifficultyBeatmapSet) string { return set.BeatmapCharacteristicName }).
		Distinct().
		ToSlice(&summary.Characteristics)

	summary.Difficulties = lo.Map(p.Difficulties, func(d *model.Difficulty, _ int) *model.DifficultySummary {
		return SummarizeDifficulty(d)
	})

	return summary
}

// SummarizeDifficulty counts the entities of d per category. A nil d summarizes as an
// unrecognized difficulty with nothing in it.
func SummarizeDifficulty(d *model.Difficulty) *model.DifficultySummary {
	summary := model.DifficultySummary{Schema: model.SchemaUnrecognized.String()}
	// header fields share their names with the summary
	if err := copier.Copy(&summary, d); err != nil {
		log.Debug().
			Err(err).
			Str("evt.name", "beatmap.summary.copy").
			Msg("difficulty header not copied")
		return &summary
	}

	summary.Schema = d.Source.String()
	summary.Version = d.SourceVersion
	summary.ColorNoteCount = len(d.ColorNotes)
	summary.BombNoteCount = len(d.BombNotes)
	summary.ObstacleCount = len(d.Obstacles)
	summary.ArcCount = len(d.Sliders)
	summary.ChainCount = len(d.BurstSliders)
	summary.EventCount = len(d.BasicBeatmapEvents) + len(d.ColorBoostBeatmapEvents)
	summary.BPMEventCount = len(d.BPMEvents)
	summary.RotationEventCount = len(d.RotationEvents)
	summary.LightGroupCount = len(d.LightColorEventBoxGroups) + len(d.LightRotationEventBoxGroups) + len(d.LightTranslationEventBoxGroups)

	return &summary
}
