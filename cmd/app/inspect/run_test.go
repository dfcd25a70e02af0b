package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/beatmap/internal/model"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, model.ProjectSummary{
		Directory:       "/songs/abc",
		InfoFilename:    "Info.dat",
		SongName:        "Song",
		SongSubName:     "Remix",
		SongAuthorName:  "Author",
		LevelAuthorName: "Mapper",
		BeatsPerMinute:  128,
		Characteristics: []string{"Standard", "Lawless"},
		Difficulties: []*model.DifficultySummary{{
			Characteristic: "Standard",
			Rank:           "ExpertPlus",
			RankValue:      9,
			Filename:       "ExpertPlusStandard.dat",
			NoteJumpSpeed:  18.5,
			Schema:         "v2",
			Version:        "2.2.0",
			Size:           1234567,
			ColorNoteCount: 1500,
			EventCount:     10,
			BPMEventCount:  1,
		}},
	})
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Song - Remix", lines[0])
	assert.Equal(t, "  by Author, mapped by Mapper, 128 BPM", lines[1])
	assert.Equal(t, "  Info.dat in /songs/abc", lines[2])
	assert.Equal(t, "  Standard, Lawless", lines[3])

	row := lines[6]
	for _, cell := range []string{"Standard", "ExpertPlus (9)", "v2 2.2.0", "1,500", "11", "18.5", "1.2 MB", "ExpertPlusStandard.dat"} {
		assert.Contains(t, row, cell)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, model.ProjectSummary{Directory: "/x"}))

	assert.True(t, strings.HasPrefix(buf.String(), "(untitled)\n  by -, mapped by -, 0 BPM\n  - in /x\n\n"))
}
