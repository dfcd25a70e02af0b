package beatmap

import (
	"context"
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"exusiai.dev/beatmap/internal/pkg/flog"
	"exusiai.dev/beatmap/internal/pkg/loaderr"
	"exusiai.dev/beatmap/internal/pkg/observability"
)

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", loaderr.ErrFileAbsent.WithCause(err)
	} else if err != nil {
		return "", loaderr.ErrFileUnreadable.WithCause(err)
	}

	return string(b), nil
}

// ReadFile returns the full content of path, or an empty string when the file is absent
// or cannot be read. The two conditions are logged separately and never returned.
func ReadFile(ctx context.Context, path string) string {
	text, err := readFile(path)
	if err == nil {
		return text
	}

	var lerr *loaderr.Error
	code := loaderr.CodeFileUnreadable
	if errors.As(err, &lerr) {
		code = lerr.Code
	}
	observability.LoadFailures.WithLabelValues(code).Inc()

	if errors.Is(err, loaderr.ErrFileAbsent) {
		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.raw.absent").
			Str("path", path).
			Msg("file does not exist, treating as empty")
	} else {
		flog.ErrorFrom(ctx).
			Str("evt.name", "beatmap.raw.unreadable").
			Str("path", path).
			Err(err).
			Msg("failed to read file, treating as empty")
	}

	return ""
}
