package model

// Schema is the difficulty document family a file was recognized as.
type Schema int

const (
	SchemaUnrecognized Schema = iota
	SchemaV2
	SchemaV3
)

func (s Schema) String() string {
	switch s {
	case SchemaV2:
		return "v2"
	case SchemaV3:
		return "v3"
	default:
		return "unrecognized"
	}
}

func (s Schema) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	// FieldVersion is the version key used by V3 documents.
	FieldVersion = "version"
	// FieldLegacyVersion is the version key used by V2 documents.
	FieldLegacyVersion = "_version"
)

// BeatmapVersion holds only the two version spellings of a difficulty document and is
// used for classification before a full parse.
type BeatmapVersion struct {
	Version       string `json:"version"`
	LegacyVersion string `json:"_version"`
}

// Get returns the value probed for the given version field.
func (v BeatmapVersion) Get(field string) string {
	switch field {
	case FieldVersion:
		return v.Version
	case FieldLegacyVersion:
		return v.LegacyVersion
	default:
		return ""
	}
}

type VersionEntry struct {
	Field   string
	Version string
	Schema  Schema
}

// VersionTable is the allow-list of recognized version strings. Rows are matched in order,
// so V3 rows take precedence over a stray legacy version key. Point releases not listed
// here are rejected rather than assumed compatible.
var VersionTable = []VersionEntry{
	{Field: FieldVersion, Version: "3.0.0", Schema: SchemaV3},
	{Field: FieldVersion, Version: "3.1.0", Schema: SchemaV3},
	{Field: FieldLegacyVersion, Version: "2.9.0", Schema: SchemaV2},
	{Field: FieldLegacyVersion, Version: "2.6.0", Schema: SchemaV2},
	{Field: FieldLegacyVersion, Version: "2.5.0", Schema: SchemaV2},
	{Field: FieldLegacyVersion, Version: "2.2.0", Schema: SchemaV2},
	{Field: FieldLegacyVersion, Version: "2.0.0", Schema: SchemaV2},
}

// Classify looks the probe up in VersionTable.
func (v BeatmapVersion) Classify() Schema {
	for _, entry := range VersionTable {
		if v.Get(entry.Field) == entry.Version {
			return entry.Schema
		}
	}
	return SchemaUnrecognized
}
