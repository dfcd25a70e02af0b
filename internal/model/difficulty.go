package model

import (
	v3 "exusiai.dev/beatmap/internal/model/v3"
)

// Difficulty is a loaded difficulty: the descriptor it was resolved from plus the
// unified timeline. Source records which schema the file was actually read as, and
// SourceVersion the version string it declared.
type Difficulty struct {
	Characteristic string  `json:"characteristic"`
	Rank           string  `json:"rank"`
	RankValue      int     `json:"rankValue"`
	Filename       string  `json:"filename"`
	NoteJumpSpeed  float64 `json:"noteJumpSpeed"`
	SpawnOffset    float64 `json:"spawnOffset"`
	Source         Schema  `json:"source"`
	SourceVersion  string  `json:"sourceVersion"`
	Fingerprint    string  `json:"fingerprint,omitempty"`
	Size           int     `json:"size"`

	v3.Difficulty
}

// ApplyDescriptor copies the header fields of the Info entry onto the difficulty.
func (d *Difficulty) ApplyDescriptor(descriptor DifficultyBeatmap) {
	d.Rank = descriptor.Difficulty
	d.RankValue = descriptor.DifficultyRank.Int()
	if d.RankValue == 0 {
		d.RankValue = RankValueOf(descriptor.Difficulty)
	}
	d.Filename = descriptor.BeatmapFilename
	d.NoteJumpSpeed = descriptor.NoteJumpMovementSpeed
	d.SpawnOffset = descriptor.NoteJumpStartBeatOffset
}
