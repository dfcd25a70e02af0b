// Package sniff classifies difficulty documents by their declared version before any
// full parse happens.
package sniff

import (
	"context"

	"github.com/tidwall/gjson"
	"golang.org/x/mod/semver"

	"exusiai.dev/beatmap/internal/model"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
)

var probedFields = []string{model.FieldVersion, model.FieldLegacyVersion}

// Probe reads only the version-bearing fields of text. It fails when text is not a JSON
// object or when a version field holds something other than a string.
func Probe(text string) (model.BeatmapVersion, error) {
	if !gjson.Valid(text) {
		return model.BeatmapVersion{}, loaderr.ErrMalformedDocument.WithMessage("document is not valid JSON")
	}

	doc := gjson.Parse(text)
	if !doc.IsObject() {
		return model.BeatmapVersion{}, loaderr.ErrMalformedDocument.WithMessage("top-level value is %s, not an object", doc.Type)
	}

	var probe model.BeatmapVersion
	for _, field := range probedFields {
		r := doc.Get(field)
		switch r.Type {
		case gjson.Null:
			// absent or explicit null
		case gjson.String:
			switch field {
			case model.FieldVersion:
				probe.Version = r.Str
			case model.FieldLegacyVersion:
				probe.LegacyVersion = r.Str
			}
		default:
			return model.BeatmapVersion{}, loaderr.ErrMalformedDocument.WithMessage("%s is %s, not a string", field, r.Type)
		}
	}

	return probe, nil
}

// Sniff classifies text. A malformed document is Unrecognized; the failure is logged,
// never returned.
func Sniff(ctx context.Context, text string) model.Schema {
	probe, err := Probe(text)
	if err != nil {
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.sniff.malformed").
			Err(err).
			Msg("failed to probe document version")
		return model.SchemaUnrecognized
	}

	schema := probe.Classify()
	if schema == model.SchemaUnrecognized {
		flog.DebugFrom(ctx).
			Str("evt.name", "beatmap.sniff.unrecognized").
			Str("version", probe.Version).
			Str("version.kind", Describe(probe.Version)).
			Str("_version", probe.LegacyVersion).
			Str("_version.kind", Describe(probe.LegacyVersion)).
			Msg("declared version is not in the allow-list")
	} else if l := flog.TraceFrom(ctx); l.Enabled() {
		l.Interface("probe", probe).
			Stringer("schema", schema).
			Msg("document version sniffed")
	}

	return schema
}

// Describe explains why a version string is outside the allow-list. It is diagnostic
// only: classification never relies on it.
func Describe(version string) string {
	if version == "" {
		return "absent"
	}
	for _, entry := range model.VersionTable {
		if entry.Version == version {
			return "listed"
		}
	}

	v := "v" + version
	if !semver.IsValid(v) {
		return "invalid"
	}

	major := semver.Major(v)
	switch {
	case semver.Compare(major, "v2") < 0:
		return "older major"
	case semver.Compare(major, "v3") > 0:
		return "newer major"
	default:
		return "unlisted point release"
	}
}
