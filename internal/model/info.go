package model

import (
	"github.com/goccy/go-json"
	"golang.org/x/text/cases"

	"exusiai.dev/beatmap/internal/model/num"
)

// BeatmapInfo is the project metadata document (Info.dat).
type BeatmapInfo struct {
	Version                      string                 `json:"_version" validate:"omitempty,semverprefixed"`
	SongName                     string                 `json:"_songName"`
	SongSubName                  string                 `json:"_songSubName"`
	SongAuthorName               string                 `json:"_songAuthorName"`
	LevelAuthorName              string                 `json:"_levelAuthorName"`
	BeatsPerMinute               float64                `json:"_beatsPerMinute"`
	SongTimeOffset               float64                `json:"_songTimeOffset"`
	Shuffle                      float64                `json:"_shuffle"`
	ShufflePeriod                float64                `json:"_shufflePeriod"`
	PreviewStartTime             float64                `json:"_previewStartTime"`
	PreviewDuration              float64                `json:"_previewDuration"`
	SongFilename                 string                 `json:"_songFilename"`
	CoverImageFilename           string                 `json:"_coverImageFilename"`
	EnvironmentName              string                 `json:"_environmentName"`
	AllDirectionsEnvironmentName string                 `json:"_allDirectionsEnvironmentName"`
	DifficultyBeatmapSets        []DifficultyBeatmapSet `json:"_difficultyBeatmapSets" validate:"dive"`
	CustomData                   json.RawMessage        `json:"_customData,omitempty"`
}

// DifficultyBeatmapSet groups the difficulties of one characteristic, e.g. "Standard".
type DifficultyBeatmapSet struct {
	BeatmapCharacteristicName string              `json:"_beatmapCharacteristicName" validate:"required"`
	DifficultyBeatmaps        []DifficultyBeatmap `json:"_difficultyBeatmaps" validate:"dive"`
	CustomData                json.RawMessage     `json:"_customData,omitempty"`
}

// DifficultyBeatmap describes a single difficulty file of a set.
type DifficultyBeatmap struct {
	Difficulty              string          `json:"_difficulty" validate:"required,caseinsensitiveoneof=easy normal hard expert expertplus"`
	DifficultyRank          num.Int         `json:"_difficultyRank"`
	BeatmapFilename         string          `json:"_beatmapFilename" validate:"required,beatmapfilename"`
	NoteJumpMovementSpeed   float64         `json:"_noteJumpMovementSpeed" validate:"gte=0"`
	NoteJumpStartBeatOffset float64         `json:"_noteJumpStartBeatOffset"`
	CustomData              json.RawMessage `json:"_customData,omitempty"`
}

// rankValues maps difficulty names to the ranks the game assigns them.
var rankValues = map[string]int{
	"easy":       1,
	"normal":     3,
	"hard":       5,
	"expert":     7,
	"expertplus": 9,
}

// fold case-folds s. A Caser is stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// RankValueOf returns the numeric rank of a difficulty name, or 0 when unknown.
func RankValueOf(name string) int {
	return rankValues[fold(name)]
}

// Find looks up a difficulty by characteristic and difficulty name, ignoring case.
func (i *BeatmapInfo) Find(characteristic, difficulty string) (DifficultyBeatmap, bool) {
	for _, set := range i.DifficultyBeatmapSets {
		if fold(set.BeatmapCharacteristicName) != fold(characteristic) {
			continue
		}
		for _, d := range set.DifficultyBeatmaps {
			if fold(d.Difficulty) == fold(difficulty) {
				return d, true
			}
		}
	}
	return DifficultyBeatmap{}, false
}

// DifficultyCount is the number of difficulties across every set.
func (i *BeatmapInfo) DifficultyCount() int {
	n := 0
	for _, set := range i.DifficultyBeatmapSets {
		n += len(set.DifficultyBeatmaps)
	}
	return n
}
