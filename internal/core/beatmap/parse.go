package beatmap

import (
	"context"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"exusiai.dev/beatmap/internal/model"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/observability"
)

// decode unmarshals text into dst. On failure dst is left untouched and the cause is
// logged under the given shape name.
func decode[T any](ctx context.Context, shape string, text string, dst *T) bool {
	ctx, span := tracer.Start(ctx, "beatmap.parse."+shape,
		trace.WithAttributes(attribute.Int("beatmap.size", len(text))))
	defer span.End()

	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		err = loaderr.ErrMalformedDocument.WithCause(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed document")
		observability.LoadFailures.WithLabelValues(loaderr.CodeMalformedDocument).Inc()

		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.parse.malformed").
			Str("shape", shape).
			Err(err).
			Msg("failed to parse document, using an empty one")
		return false
	}

	*dst = v
	return true
}

// ParseV3 reads text as a unified difficulty. Collections absent from text stay nil,
// so the caller can tell them apart from empty ones. A malformed text yields an empty
// document.
func ParseV3(ctx context.Context, text string) *v3.Difficulty {
	var d v3.Difficulty
	decode(ctx, "v3", text, &d)
	return &d
}

// ParseV2 reads text as a legacy difficulty, with the same contract as ParseV3.
func ParseV2(ctx context.Context, text string) *v2.Difficulty {
	var d v2.Difficulty
	decode(ctx, "v2", text, &d)
	return &d
}

// ParseInfo reads text as an Info document. A malformed text yields an empty one.
func ParseInfo(ctx context.Context, text string) model.BeatmapInfo {
	var info model.BeatmapInfo
	decode(ctx, "info", text, &info)
	return info
}
