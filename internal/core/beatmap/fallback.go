package beatmap

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"exusiai.dev/beatmap/internal/model"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/observability"
	"exusiai.dev/beatmap/internal/util/convert"
	"exusiai.dev/beatmap/internal/util/normalize"
	"exusiai.dev/beatmap/internal/util/sniff"
)

var tracer = otel.Tracer("beatmap")

const (
	outcomeV3   = "v3"
	outcomeV2   = "v2"
	outcomeNone = "none"
)

// Resolve decides which shape text is read as. The declared version is tried first.
// When it is unrecognized, or the matching shape has no note collection at all, the
// content decides: V3 is accepted if it has a color note collection, then V2 if it has
// a note collection. An empty collection counts as present, so a legitimately empty
// difficulty never falls back.
func Resolve(ctx context.Context, text string) Document {
	ctx, span := tracer.Start(ctx, "beatmap.resolve")
	defer span.End()

	sniffed := sniff.Sniff(ctx, text)
	span.SetAttributes(attribute.Stringer("beatmap.sniffed", sniffed))

	var (
		parsedV3 *v3.Difficulty
		parsedV2 *v2.Difficulty
	)

	switch sniffed {
	case model.SchemaV3:
		parsedV3 = ParseV3(ctx, text)
		if parsedV3.ColorNotes != nil {
			return accept(ctx, sniffed, V3Document{parsedV3})
		}
	case model.SchemaV2:
		parsedV2 = ParseV2(ctx, text)
		if parsedV2.Notes != nil {
			return accept(ctx, sniffed, V2Document{parsedV2})
		}
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "beatmap.fallback.start").
		Stringer("sniffed", sniffed).
		Msg("declared version is not usable, falling back to content")

	if parsedV3 == nil {
		parsedV3 = ParseV3(ctx, text)
	}
	if parsedV3.ColorNotes != nil {
		observability.FallbackAttempts.WithLabelValues(outcomeV3).Inc()
		return accept(ctx, sniffed, V3Document{parsedV3})
	}

	if parsedV2 == nil {
		parsedV2 = ParseV2(ctx, text)
	}
	if parsedV2.Notes != nil {
		observability.FallbackAttempts.WithLabelValues(outcomeV2).Inc()
		return accept(ctx, sniffed, V2Document{parsedV2})
	}

	observability.FallbackAttempts.WithLabelValues(outcomeNone).Inc()
	observability.LoadFailures.WithLabelValues(loaderr.CodeUnsupportedVersion).Inc()
	flog.WarnFrom(ctx).
		Str("evt.name", "beatmap.fallback.unsupported").
		Err(loaderr.ErrUnsupportedVersion.WithMessage("difficulty is unsupported or broken")).
		Stringer("sniffed", sniffed).
		Msg("no known shape could be read, using an empty difficulty")

	return accept(ctx, sniffed, EmptyDocument{})
}

func accept(ctx context.Context, sniffed model.Schema, doc Document) Document {
	accepted := doc.Schema()
	observability.DocumentSchema.WithLabelValues(sniffed.String(), accepted.String()).Inc()

	if l := flog.TraceFrom(ctx); l.Enabled() {
		l.Str("evt.name", "beatmap.fallback.accepted").
			Stringer("sniffed", sniffed).
			Stringer("accepted", accepted).
			Msg("difficulty shape accepted")
	}
	return doc
}

// Unify turns an accepted document into the normalized unified timeline. It returns the
// version the document declared alongside.
func Unify(ctx context.Context, doc Document) (*v3.Difficulty, string) {
	switch d := doc.(type) {
	case V3Document:
		return normalize.V3(d.Difficulty), d.Version
	case V2Document:
		ctx, span := tracer.Start(ctx, "beatmap.convert")
		defer span.End()
		return normalize.V3(convert.V2ToV3(ctx, normalize.V2(d.Difficulty))), d.Version
	case EmptyDocument:
		return normalize.V3(nil), ""
	default:
		panic("beatmap: unknown document type")
	}
}
