// Package convert maps legacy difficulty documents onto the unified timeline.
package convert

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"exusiai.dev/beatmap/internal/model/num"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/observability"
)

// ConvertedVersion is the version written on every converted document.
const ConvertedVersion = "3.0.0"

const (
	cutDirectionAngleMin = 1000
	cutDirectionAngleMax = 1360
	rotationValueMin     = 1000
	rotationValueOffset  = 1360
)

// rotationByValue is the legacy rotation event value table, in degrees.
var rotationByValue = [...]float64{-60, -45, -30, -15, 15, 30, 45, 60}

// lossy counts the legacy values that had no exact unified counterpart. Fractional
// values in fields the mapping looks up fall into the same buckets.
type lossy struct {
	NoteTypes     int `json:"noteTypes,omitempty"`
	CutDirections int `json:"cutDirections,omitempty"`
	ObstacleTypes int `json:"obstacleTypes,omitempty"`
	Rotations     int `json:"rotations,omitempty"`
}

func (l lossy) total() int {
	return l.NoteTypes + l.CutDirections + l.ObstacleTypes + l.Rotations
}

// V2ToV3 converts a legacy difficulty. Every legacy entity produces exactly one unified
// entity: nothing is dropped, and values without an exact counterpart are kept as close
// as possible and reported in a single warning per document.
//
// in is not modified. A nil in converts to an empty document.
func V2ToV3(ctx context.Context, in *v2.Difficulty) *v3.Difficulty {
	if in == nil {
		in = &v2.Difficulty{}
	}

	var report lossy

	out := &v3.Difficulty{
		Version:                           ConvertedVersion,
		ColorNotes:                        make([]v3.ColorNote, 0, len(in.Notes)),
		BombNotes:                         []v3.BombNote{},
		BPMEvents:                         []v3.BPMEvent{},
		RotationEvents:                    []v3.RotationEvent{},
		BasicBeatmapEvents:                make([]v3.BasicEvent, 0, len(in.Events)),
		ColorBoostBeatmapEvents:           []v3.ColorBoostEvent{},
		BurstSliders:                      []v3.Chain{},
		LightColorEventBoxGroups:          []json.RawMessage{},
		LightRotationEventBoxGroups:       []json.RawMessage{},
		LightTranslationEventBoxGroups:    []json.RawMessage{},
		UseNormalEventsAsCompatibleEvents: true,
		CustomData:                        in.CustomData,
	}

	for _, note := range in.Notes {
		if note.Type == v2.NoteTypeBomb {
			// bombs have no cut direction
			out.BombNotes = append(out.BombNotes, v3.BombNote{
				Beat:       note.Time,
				X:          note.LineIndex,
				Y:          note.LineLayer,
				CustomData: note.CustomData,
			})
			continue
		}

		if note.Type != v2.NoteTypeRed && note.Type != v2.NoteTypeBlue {
			report.NoteTypes++
		}
		direction, angle, ok := CutDirection(note.CutDirection)
		if !ok {
			report.CutDirections++
		}
		out.ColorNotes = append(out.ColorNotes, v3.ColorNote{
			Beat:        note.Time,
			X:           note.LineIndex,
			Y:           note.LineLayer,
			AngleOffset: angle,
			Color:       note.Type,
			Direction:   direction,
			CustomData:  note.CustomData,
		})
	}

	out.Obstacles = lo.Map(in.Obstacles, func(o v2.Obstacle, _ int) v3.Obstacle {
		y, h, ok := ObstacleShape(o.Type)
		if !ok {
			report.ObstacleTypes++
		}
		return v3.Obstacle{
			Beat:       o.Time,
			X:          o.LineIndex,
			Y:          y,
			Duration:   o.Duration,
			Width:      o.Width,
			Height:     h,
			CustomData: o.CustomData,
		}
	})

	for _, e := range in.Events {
		f := floatValue(e)
		switch e.Type {
		case v2.EventTypeColorBoost:
			out.ColorBoostBeatmapEvents = append(out.ColorBoostBeatmapEvents, v3.ColorBoostEvent{
				Beat:       e.Time,
				On:         e.Value == 1,
				CustomData: e.CustomData,
			})
		case v2.EventTypeEarlyRotation, v2.EventTypeLateRotation:
			r, ok := Rotation(e.Value)
			if !ok {
				report.Rotations++
			}
			out.RotationEvents = append(out.RotationEvents, v3.RotationEvent{
				Beat:          e.Time,
				ExecutionTime: lo.Ternary(e.Type == v2.EventTypeEarlyRotation, v3.ExecutionTimeEarly, v3.ExecutionTimeLate),
				Rotation:      r,
				CustomData:    e.CustomData,
			})
		case v2.EventTypeBPMChange:
			out.BPMEvents = append(out.BPMEvents, v3.BPMEvent{
				Beat:       e.Time,
				BPM:        f,
				CustomData: e.CustomData,
			})
		default:
			out.BasicBeatmapEvents = append(out.BasicBeatmapEvents, v3.BasicEvent{
				Beat:       e.Time,
				Type:       e.Type,
				Value:      e.Value,
				FloatValue: f,
				CustomData: e.CustomData,
			})
		}
	}

	out.Waypoints = lo.Map(in.Waypoints, func(w v2.Waypoint, _ int) v3.Waypoint {
		return v3.Waypoint{
			Beat:       w.Time,
			X:          w.LineIndex,
			Y:          w.LineLayer,
			Direction:  w.OffsetDirection,
			CustomData: w.CustomData,
		}
	})

	out.Sliders = lo.Map(in.Sliders, func(s v2.Slider, _ int) v3.Arc {
		return v3.Arc{
			Beat:           s.HeadTime,
			Color:          s.ColorType,
			X:              s.HeadLineIndex,
			Y:              s.HeadLineLayer,
			Direction:      s.HeadCutDirection,
			HeadMultiplier: s.HeadControlPointLengthMultiplier,
			TailBeat:       s.TailTime,
			TailX:          s.TailLineIndex,
			TailY:          s.TailLineLayer,
			TailDirection:  s.TailCutDirection,
			TailMultiplier: s.TailControlPointLengthMultiplier,
			MidAnchorMode:  s.SliderMidAnchorMode,
			CustomData:     s.CustomData,
		}
	})

	out.BasicEventTypesWithKeywords.Keywords = lo.Map(in.SpecialEventsKeywordFilters.Keywords, func(k v2.SpecialEventsForKeyword, _ int) v3.BasicEventTypesForKeyword {
		return v3.BasicEventTypesForKeyword{
			Keyword:    k.Keyword,
			EventTypes: lo.Map(k.SpecialEvents, func(t num.Int, _ int) num.Int { return t }),
		}
	})

	if n := report.total(); n > 0 {
		observability.LoadFailures.WithLabelValues(loaderr.CodeUnconvertible).Add(float64(n))
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.convert.lossy").
			Err(loaderr.ErrUnconvertible.WithMessage("%d legacy values kept without an exact counterpart", n)).
			Interface("counts", report).
			Str("legacyVersion", in.Version).
			Msg("legacy document converted with approximations")
	} else if l := flog.TraceFrom(ctx); l.Enabled() {
		l.Str("evt.name", "beatmap.convert.done").
			Int("colorNotes", len(out.ColorNotes)).
			Int("bombNotes", len(out.BombNotes)).
			Int("events", len(in.Events)).
			Msg("legacy document converted")
	}

	return out
}

// CutDirection maps a legacy cut direction to a unified direction and angle offset.
// Values 0 through 8 are plain directions; 1000 through 1360 encode a free angle
// measured from down. ok is false for anything else, fractions included, which is
// passed through as is.
func CutDirection(cut num.Int) (direction num.Int, angle num.Int, ok bool) {
	switch {
	case !cut.Integral():
		return cut, 0, false
	case cut >= v3.DirectionUp && cut <= v3.DirectionAny:
		return cut, 0, true
	case cut >= cutDirectionAngleMin && cut <= cutDirectionAngleMax:
		return v3.DirectionDown, num.Int((360 - (cut.Int()-cutDirectionAngleMin)%360) % 360), true
	default:
		return cut, 0, false
	}
}

// ObstacleShape returns the unified row and height of a legacy obstacle type. Unknown
// types get the full height wall and ok is false.
func ObstacleShape(t num.Int) (y num.Int, h num.Int, ok bool) {
	switch t {
	case v2.ObstacleTypeFullHeight:
		return 0, 5, true
	case v2.ObstacleTypeCrouch:
		return 2, 3, true
	default:
		return 0, 5, false
	}
}

// Rotation returns the rotation in degrees of a legacy rotation event value. Values from
// 1000 up carry the angle directly, offset by 1360. A fractional value is not a table
// entry, so ok is false for it.
func Rotation(value num.Int) (float64, bool) {
	switch {
	case !value.Integral():
		return 0, false
	case value >= 0 && value.Int() < len(rotationByValue):
		return rotationByValue[value.Int()], true
	case value >= rotationValueMin:
		return float64(value - rotationValueOffset), true
	default:
		return 0, false
	}
}

func floatValue(e v2.Event) float64 {
	if !e.FloatValue.Valid {
		return v2.DefaultFloatValue
	}
	return e.FloatValue.Float64
}
