package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

type (
	ctxLoggerKey    struct{}
	ctxRequestIDKey struct{}
	ctxTimeKey      struct{}
)

// With binds logger to ctx
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger bound to ctx, or the default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// WithRequestID binds id to ctx. Webhook deliveries and queued jobs are traced by it in logs
// and error reports.
func WithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

// RequestID returns the request ID of ctx without assigning a new one
func RequestID(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID)
	return id, ok
}

// CtxRequestID returns the request ID of ctx. If ctx has none, a new ID is generated and
// bound to the returned context.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := RequestID(ctx); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, WithRequestID(ctx, id)
}

type TimeFunc func() time.Time

// CtxWithTime replaces the clock of ctx
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// CtxTime returns the current time by the clock of ctx
func CtxTime(ctx context.Context) time.Time {
	if f, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return f()
	}
	return time.Now()
}

// Detach returns a context that is not cancelled with ctx. Logger, request ID and clock are
// kept. Work that must finish after the caller gave up, such as deleting a half provisioned
// repository, runs on it.
func Detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
