package convert

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/beatmap/internal/model/num"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/nilcheck"
	"exusiai.dev/beatmap/internal/pkg/observability"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestLegacyScenario(t *testing.T) {
	var in v2.Difficulty
	require.NoError(t, json.Unmarshal([]byte(`{"_version":"2.0.0","_notes":[{"_time":2.0,"_lineIndex":1,"_lineLayer":0,"_type":0,"_cutDirection":1}],"_obstacles":[],"_events":[]}`), &in))

	out := V2ToV3(testContext(t), &in)

	require.Len(t, out.ColorNotes, 1)
	assert.Equal(t, v3.ColorNote{Beat: 2, X: 1, Y: 0, Color: v3.ColorRed, Direction: v3.DirectionDown}, out.ColorNotes[0])
	assert.Empty(t, out.BombNotes)
	assert.Empty(t, out.Obstacles)
	assert.Empty(t, out.BasicBeatmapEvents)
	assert.Equal(t, ConvertedVersion, out.Version)
	assert.True(t, out.UseNormalEventsAsCompatibleEvents)
	assert.Empty(t, nilcheck.Find(out), spew.Sdump(out))
}

func TestNilInput(t *testing.T) {
	out := V2ToV3(testContext(t), nil)
	assert.Empty(t, nilcheck.Find(out))
	assert.Empty(t, out.ColorNotes)
	assert.Equal(t, ConvertedVersion, out.Version)
}

func TestCountsArePreserved(t *testing.T) {
	in := &v2.Difficulty{
		Version: "2.6.0",
		Notes: []v2.Note{
			{Time: 1, Type: v2.NoteTypeRed, CutDirection: 0},
			{Time: 1, Type: v2.NoteTypeBlue, CutDirection: 8},
			{Time: 2, Type: v2.NoteTypeBomb, CutDirection: 0},
			{Time: 3, Type: 2, CutDirection: 1},
			{Time: 4, Type: v2.NoteTypeBlue, CutDirection: 1090},
		},
		Obstacles: []v2.Obstacle{
			{Time: 1, Type: v2.ObstacleTypeFullHeight, Duration: 2, Width: 1},
			{Time: 2, Type: v2.ObstacleTypeCrouch, Duration: 1, Width: 4},
		},
		Events: []v2.Event{
			{Time: 0, Type: v2.EventTypeBPMChange, FloatValue: null.FloatFrom(128)},
			{Time: 1, Type: 0, Value: 1},
			{Time: 1, Type: v2.EventTypeColorBoost, Value: 1},
			{Time: 2, Type: v2.EventTypeColorBoost, Value: 0},
			{Time: 3, Type: v2.EventTypeEarlyRotation, Value: 0},
			{Time: 3, Type: v2.EventTypeLateRotation, Value: 7},
			{Time: 4, Type: 4, Value: 5, FloatValue: null.FloatFrom(0.25)},
		},
		Waypoints: []v2.Waypoint{{Time: 1, LineIndex: 2, LineLayer: 1, OffsetDirection: 3}},
		Sliders: []v2.Slider{{
			ColorType: 1, HeadTime: 1, HeadLineIndex: 2, HeadCutDirection: 1, HeadControlPointLengthMultiplier: 1,
			TailTime: 2, TailLineIndex: 3, TailLineLayer: 2, TailCutDirection: 0, TailControlPointLengthMultiplier: 0.5,
			SliderMidAnchorMode: 1,
		}},
		SpecialEventsKeywordFilters: v2.SpecialEventsKeywordFilters{
			Keywords: []v2.SpecialEventsForKeyword{{Keyword: "drop", SpecialEvents: []num.Int{40, 41}}},
		},
		CustomData: json.RawMessage(`{"_bookmarks":[]}`),
	}

	out := V2ToV3(testContext(t), in)

	assert.Equal(t, len(in.Notes), len(out.ColorNotes)+len(out.BombNotes))
	assert.Equal(t, len(in.Obstacles), len(out.Obstacles))
	assert.Equal(t, len(in.Events), len(out.BPMEvents)+len(out.RotationEvents)+len(out.ColorBoostBeatmapEvents)+len(out.BasicBeatmapEvents))
	assert.Equal(t, len(in.Waypoints), len(out.Waypoints))
	assert.Equal(t, len(in.Sliders), len(out.Sliders))

	assert.Len(t, out.ColorNotes, 4)
	assert.Len(t, out.BombNotes, 1)
	assert.Equal(t, v3.BombNote{Beat: 2}, out.BombNotes[0])
	assert.Equal(t, num.Int(2), out.ColorNotes[2].Color, "unknown note types keep their raw value")
	assert.Equal(t, v3.DirectionDown, out.ColorNotes[3].Direction)
	assert.Equal(t, num.Int(270), out.ColorNotes[3].AngleOffset)

	assert.Equal(t, []v3.Obstacle{
		{Beat: 1, X: 0, Y: 0, Duration: 2, Width: 1, Height: 5},
		{Beat: 2, X: 0, Y: 2, Duration: 1, Width: 4, Height: 3},
	}, out.Obstacles)

	assert.Equal(t, []v3.BPMEvent{{Beat: 0, BPM: 128}}, out.BPMEvents)
	assert.Equal(t, []v3.ColorBoostEvent{{Beat: 1, On: true}, {Beat: 2, On: false}}, out.ColorBoostBeatmapEvents)
	assert.Equal(t, []v3.RotationEvent{
		{Beat: 3, ExecutionTime: v3.ExecutionTimeEarly, Rotation: -60},
		{Beat: 3, ExecutionTime: v3.ExecutionTimeLate, Rotation: 60},
	}, out.RotationEvents)
	assert.Equal(t, []v3.BasicEvent{
		{Beat: 1, Type: 0, Value: 1, FloatValue: v2.DefaultFloatValue},
		{Beat: 4, Type: 4, Value: 5, FloatValue: 0.25},
	}, out.BasicBeatmapEvents)

	assert.Equal(t, []v3.Waypoint{{Beat: 1, X: 2, Y: 1, Direction: 3}}, out.Waypoints)
	assert.Equal(t, v3.Arc{
		Beat: 1, Color: 1, X: 2, Y: 0, Direction: 1, HeadMultiplier: 1,
		TailBeat: 2, TailX: 3, TailY: 2, TailDirection: 0, TailMultiplier: 0.5,
		MidAnchorMode: 1,
	}, out.Sliders[0])
	assert.Equal(t, []v3.BasicEventTypesForKeyword{{Keyword: "drop", EventTypes: []num.Int{40, 41}}}, out.BasicEventTypesWithKeywords.Keywords)
	assert.JSONEq(t, `{"_bookmarks":[]}`, string(out.CustomData))

	assert.Empty(t, nilcheck.Find(out), spew.Sdump(out))
}

func TestCustomDataCarriedOver(t *testing.T) {
	in := &v2.Difficulty{
		Notes:  []v2.Note{{Type: v2.NoteTypeRed, CustomData: json.RawMessage(`{"_color":[1,0,0]}`)}},
		Events: []v2.Event{{Type: 1, CustomData: json.RawMessage(`{"_lightID":3}`)}},
	}
	out := V2ToV3(testContext(t), in)

	assert.JSONEq(t, `{"_color":[1,0,0]}`, string(out.ColorNotes[0].CustomData))
	assert.JSONEq(t, `{"_lightID":3}`, string(out.BasicBeatmapEvents[0].CustomData))
}

func TestInputIsNotModified(t *testing.T) {
	in := &v2.Difficulty{
		Events: []v2.Event{{Type: 1}},
		SpecialEventsKeywordFilters: v2.SpecialEventsKeywordFilters{
			Keywords: []v2.SpecialEventsForKeyword{{Keyword: "a"}},
		},
	}
	out := V2ToV3(testContext(t), in)

	assert.False(t, in.Events[0].FloatValue.Valid)
	assert.Nil(t, in.SpecialEventsKeywordFilters.Keywords[0].SpecialEvents)
	assert.Equal(t, []num.Int{}, out.BasicEventTypesWithKeywords.Keywords[0].EventTypes)
}

func TestLossyValuesAreCounted(t *testing.T) {
	counter := observability.LoadFailures.WithLabelValues(loaderr.CodeUnconvertible)
	before := testutil.ToFloat64(counter)

	in := &v2.Difficulty{
		Notes: []v2.Note{
			{Type: 7, CutDirection: 0},
			{Type: v2.NoteTypeRed, CutDirection: 42},
		},
		Obstacles: []v2.Obstacle{{Type: 9}},
		Events:    []v2.Event{{Type: v2.EventTypeLateRotation, Value: 500}},
	}
	out := V2ToV3(testContext(t), in)

	assert.Equal(t, before+4, testutil.ToFloat64(counter))
	assert.Len(t, out.ColorNotes, 2, "lossy notes are still kept")
	assert.Len(t, out.Obstacles, 1)
	assert.Len(t, out.RotationEvents, 1)
}

func TestFractionalValues(t *testing.T) {
	counter := observability.LoadFailures.WithLabelValues(loaderr.CodeUnconvertible)
	before := testutil.ToFloat64(counter)

	var in v2.Difficulty
	require.NoError(t, json.Unmarshal([]byte(`{"_version":"2.2.0",`+
		`"_notes":[{"_time":1,"_lineIndex":1.0,"_lineLayer":2.0,"_type":1.0,"_cutDirection":1.0},{"_time":2,"_lineIndex":1.5,"_type":0,"_cutDirection":2.5}],`+
		`"_obstacles":[{"_time":1,"_lineIndex":0,"_type":1.0,"_duration":1,"_width":2.0},{"_time":2,"_type":0.5,"_width":1}],`+
		`"_events":[{"_time":1,"_type":14.0,"_value":3.0},{"_time":2,"_type":15,"_value":3.5}]}`), &in))

	out := V2ToV3(testContext(t), &in)

	require.Len(t, out.ColorNotes, 2)
	assert.Equal(t, v3.ColorNote{Beat: 1, X: 1, Y: 2, Color: v3.ColorBlue, Direction: v3.DirectionDown}, out.ColorNotes[0])
	assert.Equal(t, num.Int(1.5), out.ColorNotes[1].X, "fractions outside the mapping are carried over")
	assert.Equal(t, num.Int(2.5), out.ColorNotes[1].Direction)

	require.Len(t, out.Obstacles, 2)
	assert.Equal(t, v3.Obstacle{Beat: 1, X: 0, Y: 2, Duration: 1, Width: 2, Height: 3}, out.Obstacles[0])

	require.Len(t, out.RotationEvents, 2)
	assert.Equal(t, -15.0, out.RotationEvents[0].Rotation)

	// the cut direction, the obstacle type and the rotation value have no exact mapping
	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestCutDirection(t *testing.T) {
	type testCase struct {
		cut       num.Int
		direction num.Int
		angle     num.Int
		ok        bool
	}

	testCases := []testCase{
		{0, v3.DirectionUp, 0, true},
		{1, v3.DirectionDown, 0, true},
		{8, v3.DirectionAny, 0, true},
		{1000, v3.DirectionDown, 0, true},
		{1045, v3.DirectionDown, 315, true},
		{1180, v3.DirectionDown, 180, true},
		{1359, v3.DirectionDown, 1, true},
		{1360, v3.DirectionDown, 0, true},
		{9, 9, 0, false},
		{-1, -1, 0, false},
		{1361, 1361, 0, false},
		{1.5, 1.5, 0, false},
		{1045.5, 1045.5, 0, false},
	}

	for _, tc := range testCases {
		direction, angle, ok := CutDirection(tc.cut)
		assert.Equal(t, tc.direction, direction, "direction of %v", tc.cut)
		assert.Equal(t, tc.angle, angle, "angle of %v", tc.cut)
		assert.Equal(t, tc.ok, ok, "ok of %v", tc.cut)
	}
}

func TestRotation(t *testing.T) {
	type testCase struct {
		value    num.Int
		rotation float64
		ok       bool
	}

	testCases := []testCase{
		{0, -60, true},
		{3, -15, true},
		{4, 15, true},
		{7, 60, true},
		{1360, 0, true},
		{1450, 90, true},
		{1000, -360, true},
		{8, 0, false},
		{-1, 0, false},
		{2.5, 0, false},
	}

	for _, tc := range testCases {
		rotation, ok := Rotation(tc.value)
		assert.Equal(t, tc.rotation, rotation, "rotation of %v", tc.value)
		assert.Equal(t, tc.ok, ok, "ok of %v", tc.value)
	}
}

func TestObstacleShape(t *testing.T) {
	y, h, ok := ObstacleShape(v2.ObstacleTypeFullHeight)
	assert.Equal(t, []num.Int{0, 5}, []num.Int{y, h})
	assert.True(t, ok)

	y, h, ok = ObstacleShape(v2.ObstacleTypeCrouch)
	assert.Equal(t, []num.Int{2, 3}, []num.Int{y, h})
	assert.True(t, ok)

	y, h, ok = ObstacleShape(2)
	assert.Equal(t, []num.Int{0, 5}, []num.Int{y, h})
	assert.False(t, ok)

	y, h, ok = ObstacleShape(1.5)
	assert.Equal(t, []num.Int{0, 5}, []num.Int{y, h})
	assert.False(t, ok)
}
