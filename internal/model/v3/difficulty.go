package v3

import (
	"github.com/goccy/go-json"

	"exusiai.dev/beatmap/internal/model/num"
)

// Difficulty is the unified difficulty timeline. Every loaded difficulty ends up in this
// shape regardless of the schema it was read from.
//
// Entities keep the order they were read in; nothing here is sorted.
type Difficulty struct {
	Version                           string                      `json:"version"`
	BPMEvents                         []BPMEvent                  `json:"bpmEvents"`
	RotationEvents                    []RotationEvent             `json:"rotationEvents"`
	ColorNotes                        []ColorNote                 `json:"colorNotes"`
	BombNotes                         []BombNote                  `json:"bombNotes"`
	Obstacles                         []Obstacle                  `json:"obstacles"`
	Sliders                           []Arc                       `json:"sliders"`
	BurstSliders                      []Chain                     `json:"burstSliders"`
	Waypoints                         []Waypoint                  `json:"waypoints"`
	BasicBeatmapEvents                []BasicEvent                `json:"basicBeatmapEvents"`
	ColorBoostBeatmapEvents           []ColorBoostEvent           `json:"colorBoostBeatmapEvents"`
	LightColorEventBoxGroups          []json.RawMessage           `json:"lightColorEventBoxGroups"`
	LightRotationEventBoxGroups       []json.RawMessage           `json:"lightRotationEventBoxGroups"`
	LightTranslationEventBoxGroups    []json.RawMessage           `json:"lightTranslationEventBoxGroups"`
	BasicEventTypesWithKeywords       BasicEventTypesWithKeywords `json:"basicEventTypesWithKeywords"`
	UseNormalEventsAsCompatibleEvents bool                        `json:"useNormalEventsAsCompatibleEvents"`
	CustomData                        json.RawMessage             `json:"customData,omitempty"`
}

const (
	ColorRed  num.Int = 0
	ColorBlue num.Int = 1
)

// Cut directions. Any is the dot note.
const (
	DirectionUp num.Int = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
	DirectionAny
)

type ColorNote struct {
	Beat        float64         `json:"b"`
	X           num.Int         `json:"x"`
	Y           num.Int         `json:"y"`
	AngleOffset num.Int         `json:"a"`
	Color       num.Int         `json:"c"`
	Direction   num.Int         `json:"d"`
	CustomData  json.RawMessage `json:"customData,omitempty"`
}

type BombNote struct {
	Beat       float64         `json:"b"`
	X          num.Int         `json:"x"`
	Y          num.Int         `json:"y"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

type Obstacle struct {
	Beat       float64         `json:"b"`
	X          num.Int         `json:"x"`
	Y          num.Int         `json:"y"`
	Duration   float64         `json:"d"`
	Width      num.Int         `json:"w"`
	Height     num.Int         `json:"h"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

// Arc is a slider between a head and a tail note.
type Arc struct {
	Beat           float64         `json:"b"`
	Color          num.Int         `json:"c"`
	X              num.Int         `json:"x"`
	Y              num.Int         `json:"y"`
	Direction      num.Int         `json:"d"`
	HeadMultiplier float64         `json:"mu"`
	TailBeat       float64         `json:"tb"`
	TailX          num.Int         `json:"tx"`
	TailY          num.Int         `json:"ty"`
	TailDirection  num.Int         `json:"tc"`
	TailMultiplier float64         `json:"tmu"`
	MidAnchorMode  num.Int         `json:"m"`
	CustomData     json.RawMessage `json:"customData,omitempty"`
}

// Chain is a burst slider.
type Chain struct {
	Beat       float64         `json:"b"`
	X          num.Int         `json:"x"`
	Y          num.Int         `json:"y"`
	Color      num.Int         `json:"c"`
	Direction  num.Int         `json:"d"`
	TailBeat   float64         `json:"tb"`
	TailX      num.Int         `json:"tx"`
	TailY      num.Int         `json:"ty"`
	SliceCount num.Int         `json:"sc"`
	Squish     float64         `json:"s"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

type Waypoint struct {
	Beat       float64         `json:"b"`
	X          num.Int         `json:"x"`
	Y          num.Int         `json:"y"`
	Direction  num.Int         `json:"d"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

type BPMEvent struct {
	Beat       float64         `json:"b"`
	BPM        float64         `json:"m"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

const (
	ExecutionTimeEarly num.Int = 0
	ExecutionTimeLate  num.Int = 1
)

type RotationEvent struct {
	Beat          float64         `json:"b"`
	ExecutionTime num.Int         `json:"e"`
	Rotation      float64         `json:"r"`
	CustomData    json.RawMessage `json:"customData,omitempty"`
}

type BasicEvent struct {
	Beat       float64         `json:"b"`
	Type       num.Int         `json:"et"`
	Value      num.Int         `json:"i"`
	FloatValue float64         `json:"f"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

type ColorBoostEvent struct {
	Beat       float64         `json:"b"`
	On         bool            `json:"o"`
	CustomData json.RawMessage `json:"customData,omitempty"`
}

type BasicEventTypesWithKeywords struct {
	Keywords []BasicEventTypesForKeyword `json:"d"`
}

type BasicEventTypesForKeyword struct {
	Keyword    string    `json:"k"`
	EventTypes []num.Int `json:"e"`
}
