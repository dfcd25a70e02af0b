// Package normalize replaces absent collections with empty ones and absent scalars with
// their documented defaults, so callers can iterate any collection without a nil check.
//
// Every function returns a copy: the input is never modified, and values that are
// already present are carried over unchanged. Defaults are the zero value of each field
// except for v2.Event.FloatValue, which defaults to v2.DefaultFloatValue.
package normalize

import (
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/beatmap/internal/model"
	"exusiai.dev/beatmap/internal/model/num"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
)

// keep is an identity iteratee. lo.Map over a nil slice yields an empty one, so
// lo.Map(s, keep[T]) is a copy that is never nil.
func keep[T any](item T, _ int) T {
	return item
}

func Info(in model.BeatmapInfo) model.BeatmapInfo {
	out := in
	out.DifficultyBeatmapSets = lo.Map(in.DifficultyBeatmapSets, func(set model.DifficultyBeatmapSet, _ int) model.DifficultyBeatmapSet {
		set.DifficultyBeatmaps = lo.Map(set.DifficultyBeatmaps, keep[model.DifficultyBeatmap])
		return set
	})
	return out
}

func V2(in *v2.Difficulty) *v2.Difficulty {
	if in == nil {
		in = &v2.Difficulty{}
	}

	out := *in
	out.Notes = lo.Map(in.Notes, keep[v2.Note])
	out.Sliders = lo.Map(in.Sliders, keep[v2.Slider])
	out.Obstacles = lo.Map(in.Obstacles, keep[v2.Obstacle])
	out.Events = lo.Map(in.Events, func(e v2.Event, _ int) v2.Event {
		if !e.FloatValue.Valid {
			e.FloatValue = null.FloatFrom(v2.DefaultFloatValue)
		}
		return e
	})
	out.Waypoints = lo.Map(in.Waypoints, keep[v2.Waypoint])
	out.SpecialEventsKeywordFilters.Keywords = lo.Map(in.SpecialEventsKeywordFilters.Keywords, func(k v2.SpecialEventsForKeyword, _ int) v2.SpecialEventsForKeyword {
		k.SpecialEvents = lo.Map(k.SpecialEvents, keep[num.Int])
		return k
	})
	return &out
}

func V3(in *v3.Difficulty) *v3.Difficulty {
	if in == nil {
		in = &v3.Difficulty{}
	}

	out := *in
	out.BPMEvents = lo.Map(in.BPMEvents, keep[v3.BPMEvent])
	out.RotationEvents = lo.Map(in.RotationEvents, keep[v3.RotationEvent])
	out.ColorNotes = lo.Map(in.ColorNotes, keep[v3.ColorNote])
	out.BombNotes = lo.Map(in.BombNotes, keep[v3.BombNote])
	out.Obstacles = lo.Map(in.Obstacles, keep[v3.Obstacle])
	out.Sliders = lo.Map(in.Sliders, keep[v3.Arc])
	out.BurstSliders = lo.Map(in.BurstSliders, keep[v3.Chain])
	out.Waypoints = lo.Map(in.Waypoints, keep[v3.Waypoint])
	out.BasicBeatmapEvents = lo.Map(in.BasicBeatmapEvents, keep[v3.BasicEvent])
	out.ColorBoostBeatmapEvents = lo.Map(in.ColorBoostBeatmapEvents, keep[v3.ColorBoostEvent])
	out.LightColorEventBoxGroups = lo.Map(in.LightColorEventBoxGroups, keep[json.RawMessage])
	out.LightRotationEventBoxGroups = lo.Map(in.LightRotationEventBoxGroups, keep[json.RawMessage])
	out.LightTranslationEventBoxGroups = lo.Map(in.LightTranslationEventBoxGroups, keep[json.RawMessage])
	out.BasicEventTypesWithKeywords.Keywords = lo.Map(in.BasicEventTypesWithKeywords.Keywords, func(k v3.BasicEventTypesForKeyword, _ int) v3.BasicEventTypesForKeyword {
		k.EventTypes = lo.Map(k.EventTypes, keep[num.Int])
		return k
	})
	return &out
}
