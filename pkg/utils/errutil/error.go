package errutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// HandleError logs err and reports it to Sentry with goerr values as extras. Errors caused by
// cancellation of the caller are only logged.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn(msg, slog.Any("error", err))
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID, ok := logging.RequestID(ctx); ok {
			scope.SetTag("request_id", string(reqID))
		}

		var pErr *model.PlatformError
		if errors.As(err, &pErr) {
			scope.SetTag("platform_status", fmt.Sprintf("%d", pErr.StatusCode))
		}

		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logger.Error(msg,
		slog.Any("error", err),
		slog.Any("sentry.EventID", evID),
	)
}
