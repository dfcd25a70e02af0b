package v2

import (
	"github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/beatmap/internal/model/num"
)

// Difficulty is the legacy difficulty document. It only lives long enough to be
// converted to the unified shape.
//
// A nil collection means the key was absent or null; an empty one means it was [].
type Difficulty struct {
	Version                     string                      `json:"_version"`
	Notes                       []Note                      `json:"_notes"`
	Sliders                     []Slider                    `json:"_sliders"`
	Obstacles                   []Obstacle                  `json:"_obstacles"`
	Events                      []Event                     `json:"_events"`
	Waypoints                   []Waypoint                  `json:"_waypoints"`
	SpecialEventsKeywordFilters SpecialEventsKeywordFilters `json:"_specialEventsKeywordFilters"`
	CustomData                  json.RawMessage             `json:"_customData,omitempty"`
}

const (
	NoteTypeRed  = 0
	NoteTypeBlue = 1
	NoteTypeBomb = 3
)

// Note.Type combines the color and the bomb flag.
type Note struct {
	Time         float64         `json:"_time"`
	LineIndex    num.Int         `json:"_lineIndex"`
	LineLayer    num.Int         `json:"_lineLayer"`
	Type         num.Int         `json:"_type"`
	CutDirection num.Int         `json:"_cutDirection"`
	CustomData   json.RawMessage `json:"_customData,omitempty"`
}

const (
	ObstacleTypeFullHeight = 0
	ObstacleTypeCrouch     = 1
)

type Obstacle struct {
	Time       float64         `json:"_time"`
	LineIndex  num.Int         `json:"_lineIndex"`
	Type       num.Int         `json:"_type"`
	Duration   float64         `json:"_duration"`
	Width      num.Int         `json:"_width"`
	CustomData json.RawMessage `json:"_customData,omitempty"`
}

const (
	EventTypeColorBoost    = 5
	EventTypeEarlyRotation = 14
	EventTypeLateRotation  = 15
	EventTypeBPMChange     = 100
)

// DefaultFloatValue is used for events written before 2.5.0, which had no _floatValue.
const DefaultFloatValue = 1.0

type Event struct {
	Time       float64         `json:"_time"`
	Type       num.Int         `json:"_type"`
	Value      num.Int         `json:"_value"`
	FloatValue null.Float      `json:"_floatValue"`
	CustomData json.RawMessage `json:"_customData,omitempty"`
}

type Waypoint struct {
	Time            float64         `json:"_time"`
	LineIndex       num.Int         `json:"_lineIndex"`
	LineLayer       num.Int         `json:"_lineLayer"`
	OffsetDirection num.Int         `json:"_offsetDirection"`
	CustomData      json.RawMessage `json:"_customData,omitempty"`
}

// Slider is an arc, introduced in 2.6.0.
type Slider struct {
	ColorType                        num.Int         `json:"_colorType"`
	HeadTime                         float64         `json:"_headTime"`
	HeadLineIndex                    num.Int         `json:"_headLineIndex"`
	HeadLineLayer                    num.Int         `json:"_headLineLayer"`
	HeadControlPointLengthMultiplier float64         `json:"_headControlPointLengthMultiplier"`
	HeadCutDirection                 num.Int         `json:"_headCutDirection"`
	TailTime                         float64         `json:"_tailTime"`
	TailLineIndex                    num.Int         `json:"_tailLineIndex"`
	TailLineLayer                    num.Int         `json:"_tailLineLayer"`
	TailControlPointLengthMultiplier float64         `json:"_tailControlPointLengthMultiplier"`
	TailCutDirection                 num.Int         `json:"_tailCutDirection"`
	SliderMidAnchorMode              num.Int         `json:"_sliderMidAnchorMode"`
	CustomData                       json.RawMessage `json:"_customData,omitempty"`
}

type SpecialEventsKeywordFilters struct {
	Keywords []SpecialEventsForKeyword `json:"_keywords"`
}

type SpecialEventsForKeyword struct {
	Keyword       string    `json:"_keyword"`
	SpecialEvents []num.Int `json:"_specialEvents"`
}
