// Package flog provides a set of context.Context helpers for zerolog, so every log line
// of a single load can be correlated.
package flog

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// From gets the logger in the context, falling back to the global logger.
// This is a shortcut for log.Ctx(ctx) that never returns the disabled logger.
func From(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

// WithLoadID returns a context carrying a child logger tagged with a fresh load id under
// fieldKey. If ctx already has a load id, it is kept.
func WithLoadID(ctx context.Context, fieldKey string) context.Context {
	if _, ok := IDFromCtx(ctx); ok {
		return ctx
	}
	id := xid.New()
	// Create a copy of the logger (including internal context slice)
	// to prevent data race between concurrent loads.
	l := From(ctx).With().Str(fieldKey, id.String()).Logger()
	return CtxWithID(l.WithContext(ctx), id)
}

// With returns a context whose logger additionally carries the given string field.
func With(ctx context.Context, key, value string) context.Context {
	l := From(ctx).With().Str(key, value).Logger()
	return l.WithContext(ctx)
}

// IDFromCtx returns the load id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// Logger Level Method Helpers
func TraceFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Trace()
}

func DebugFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Debug()
}

func InfoFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Info()
}

func WarnFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Warn()
}

func ErrorFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Error()
}
