package beatmap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/beatmap/internal/core/beatmap"
	"exusiai.dev/beatmap/internal/model"
)

const testInfo = `{
	"_version": "2.0.0",
	"_songName": "Song",
	"_songSubName": "Sub",
	"_songAuthorName": "Author",
	"_levelAuthorName": "Mapper",
	"_beatsPerMinute": 128,
	"_difficultyBeatmapSets": [
		{
			"_beatmapCharacteristicName": "Standard",
			"_difficultyBeatmaps": [
				{"_difficulty": "Hard", "_difficultyRank": 5, "_beatmapFilename": "HardStandard.dat", "_noteJumpMovementSpeed": 12, "_noteJumpStartBeatOffset": 0},
				{"_difficulty": "Expert", "_difficultyRank": 7, "_beatmapFilename": "ExpertStandard.dat", "_noteJumpMovementSpeed": 16, "_noteJumpStartBeatOffset": -0.25}
			]
		},
		{
			"_beatmapCharacteristicName": "OneSaber",
			"_difficultyBeatmaps": [
				{"_difficulty": "Expert", "_difficultyRank": 7, "_beatmapFilename": "ExpertOneSaber.dat", "_noteJumpMovementSpeed": 16, "_noteJumpStartBeatOffset": 0}
			]
		}
	]
}`

func writeProject(t *testing.T, dir string, infoName string, files map[string]string) {
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, infoName), []byte(testInfo), 0o644))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestLoadProject(t *testing.T) {
	svc := newService(t)
	dir := t.TempDir()
	// ExpertOneSaber.dat is left out on purpose
	writeProject(t, dir, "Info.dat", map[string]string{
		"HardStandard.dat":   v2Document,
		"ExpertStandard.dat": v3Document,
	})

	p := svc.LoadProject(context.Background(), dir)

	assert.Equal(t, dir, p.Directory)
	assert.Equal(t, "Info.dat", p.InfoFilename)
	assert.Equal(t, "Song", p.Info.SongName)
	require.Len(t, p.Difficulties, 3)

	type want struct {
		characteristic string
		rank           string
		source         model.Schema
		colorNotes     int
	}
	wants := []want{
		{"Standard", "Hard", model.SchemaV2, 1},
		{"Standard", "Expert", model.SchemaV3, 1},
		{"OneSaber", "Expert", model.SchemaUnrecognized, 0},
	}
	for i, w := range wants {
		d := p.Difficulties[i]
		assertTotal(t, d)
		assert.Equal(t, w.characteristic, d.Characteristic, "difficulty %d", i)
		assert.Equal(t, w.rank, d.Rank, "difficulty %d", i)
		assert.Equal(t, w.source, d.Source, "difficulty %d", i)
		assert.Len(t, d.ColorNotes, w.colorNotes, "difficulty %d", i)
	}
	assert.Equal(t, -0.25, p.Difficulties[1].SpawnOffset)
}

func TestLoadProjectAlternateInfoName(t *testing.T) {
	svc := newService(t)
	dir := t.TempDir()
	writeProject(t, dir, "info.dat", nil)

	p := svc.LoadProject(context.Background(), dir)
	assert.Equal(t, "Song", p.Info.SongName)
	assert.Len(t, p.Difficulties, 3)
}

func TestLoadProjectWithoutInfo(t *testing.T) {
	svc := newService(t)

	p := svc.LoadProject(context.Background(), t.TempDir())
	assert.Empty(t, p.InfoFilename)
	assert.NotNil(t, p.Difficulties)
	assert.Empty(t, p.Difficulties)
	assert.NotNil(t, p.Info.DifficultyBeatmapSets)
}

func TestScan(t *testing.T) {
	svc := newService(t)
	root := t.TempDir()

	writeProject(t, filepath.Join(root, "b-song"), "Info.dat", map[string]string{"HardStandard.dat": v3Document})
	writeProject(t, filepath.Join(root, "a-song"), "Info.dat", map[string]string{"HardStandard.dat": v2Document})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-project"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("hi"), 0o644))

	summaries := svc.Scan(context.Background(), root)

	require.Len(t, summaries, 2)
	assert.Equal(t, filepath.Join(root, "a-song"), summaries[0].Directory)
	assert.Equal(t, filepath.Join(root, "b-song"), summaries[1].Directory)

	s := summaries[0]
	assert.Equal(t, "Song", s.SongName)
	assert.Equal(t, "Info.dat", s.InfoFilename)
	assert.Equal(t, []string{"Standard", "OneSaber"}, s.Characteristics)
	require.Len(t, s.Difficulties, 3)
	assert.Equal(t, "v2", s.Difficulties[0].Schema)
	assert.Equal(t, "2.0.0", s.Difficulties[0].Version)
	assert.Equal(t, 1, s.Difficulties[0].ColorNoteCount)
	assert.Equal(t, "unrecognized", s.Difficulties[1].Schema)
	assert.Empty(t, s.Difficulties[1].Fingerprint)
	assert.Equal(t, "v3", summaries[1].Difficulties[0].Schema)
}

func TestScanMissingRoot(t *testing.T) {
	svc := newService(t)

	summaries := svc.Scan(context.Background(), filepath.Join(t.TempDir(), "nowhere"))
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestSummarizeDifficulty(t *testing.T) {
	newService(t)

	text := `{"version":"3.0.0","colorNotes":[{"b":1},{"b":2}],"bombNotes":[{"b":1}],"obstacles":[{"b":1}],` +
		`"sliders":[{"b":1}],"burstSliders":[{"b":1}],"basicBeatmapEvents":[{"b":1},{"b":2}],"colorBoostBeatmapEvents":[{"b":1}],` +
		`"bpmEvents":[{"b":0,"m":120}],"rotationEvents":[],"lightColorEventBoxGroups":[{"b":1}],"lightRotationEventBoxGroups":[{"b":2}]}`
	d := beatmap.ParseDifficultyFromJSON(context.Background(), text)
	d.ApplyDescriptor(model.DifficultyBeatmap{Difficulty: "ExpertPlus", BeatmapFilename: "ExpertPlus.dat", NoteJumpMovementSpeed: 18})
	d.Characteristic = "Standard"

	s := beatmap.SummarizeDifficulty(d)

	assert.Equal(t, &model.DifficultySummary{
		Characteristic:     "Standard",
		Rank:               "ExpertPlus",
		RankValue:          9,
		Filename:           "ExpertPlus.dat",
		NoteJumpSpeed:      18,
		Schema:             "v3",
		Version:            "3.0.0",
		Fingerprint:        beatmap.Fingerprint(text),
		Size:               len(text),
		ColorNoteCount:     2,
		BombNoteCount:      1,
		ObstacleCount:      1,
		ArcCount:           1,
		ChainCount:         1,
		EventCount:         3,
		BPMEventCount:      1,
		RotationEventCount: 0,
		LightGroupCount:    2,
	}, s)
}

func TestSummarizeNilDifficulty(t *testing.T) {
	s := beatmap.SummarizeDifficulty(nil)
	assert.Equal(t, &model.DifficultySummary{Schema: model.SchemaUnrecognized.String()}, s)

	summary := beatmap.Summarize(model.Project{Difficulties: []*model.Difficulty{nil}})
	require.Len(t, summary.Difficulties, 1)
	assert.Equal(t, "unrecognized", summary.Difficulties[0].Schema)
}
