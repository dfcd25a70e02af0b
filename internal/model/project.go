package model

// Project is an Info document together with every difficulty it references, in the
// order the Info lists them.
type Project struct {
	Directory    string        `json:"directory"`
	InfoFilename string        `json:"infoFilename"`
	Info         BeatmapInfo   `json:"info"`
	Difficulties []*Difficulty `json:"difficulties"`
}

// ProjectSummary is the manifest entry of a project, as printed by the inspect and scan
// commands.
type ProjectSummary struct {
	Directory       string               `json:"directory" yaml:"directory" msgpack:"directory"`
	InfoFilename    string               `json:"infoFilename" yaml:"infoFilename" msgpack:"infoFilename"`
	SongName        string               `json:"songName" yaml:"songName" msgpack:"songName"`
	SongSubName     string               `json:"songSubName" yaml:"songSubName" msgpack:"songSubName"`
	SongAuthorName  string               `json:"songAuthorName" yaml:"songAuthorName" msgpack:"songAuthorName"`
	LevelAuthorName string               `json:"levelAuthorName" yaml:"levelAuthorName" msgpack:"levelAuthorName"`
	BeatsPerMinute  float64              `json:"beatsPerMinute" yaml:"beatsPerMinute" msgpack:"beatsPerMinute"`
	Characteristics []string             `json:"characteristics" yaml:"characteristics" msgpack:"characteristics"`
	Difficulties    []*DifficultySummary `json:"difficulties" yaml:"difficulties" msgpack:"difficulties"`
}

// DifficultySummary is the entity count breakdown of a loaded difficulty.
type DifficultySummary struct {
	Characteristic string  `json:"characteristic" yaml:"characteristic" msgpack:"characteristic"`
	Rank           string  `json:"rank" yaml:"rank" msgpack:"rank"`
	RankValue      int     `json:"rankValue" yaml:"rankValue" msgpack:"rankValue"`
	Filename       string  `json:"filename" yaml:"filename" msgpack:"filename"`
	NoteJumpSpeed  float64 `json:"noteJumpSpeed" yaml:"noteJumpSpeed" msgpack:"noteJumpSpeed"`
	SpawnOffset    float64 `json:"spawnOffset" yaml:"spawnOffset" msgpack:"spawnOffset"`
	Schema         string  `json:"schema" yaml:"schema" msgpack:"schema"`
	Version        string  `json:"version" yaml:"version" msgpack:"version"`
	Fingerprint    string  `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty" msgpack:"fingerprint,omitempty"`
	Size           int     `json:"size" yaml:"size" msgpack:"size"`

	ColorNoteCount     int `json:"colorNotes" yaml:"colorNotes" msgpack:"colorNotes"`
	BombNoteCount      int `json:"bombNotes" yaml:"bombNotes" msgpack:"bombNotes"`
	ObstacleCount      int `json:"obstacles" yaml:"obstacles" msgpack:"obstacles"`
	ArcCount           int `json:"arcs" yaml:"arcs" msgpack:"arcs"`
	ChainCount         int `json:"chains" yaml:"chains" msgpack:"chains"`
	EventCount         int `json:"events" yaml:"events" msgpack:"events"`
	BPMEventCount      int `json:"bpmEvents" yaml:"bpmEvents" msgpack:"bpmEvents"`
	RotationEventCount int `json:"rotationEvents" yaml:"rotationEvents" msgpack:"rotationEvents"`
	LightGroupCount    int `json:"lightGroups" yaml:"lightGroups" msgpack:"lightGroups"`
}
