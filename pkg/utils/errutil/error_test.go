package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

func newCapturedContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	handler := gt.R1(logging.NewHandler(&buf, "json", slog.LevelDebug)).NoError(t)
	return logging.With(context.Background(), slog.New(handler)), &buf
}

func TestHandleError(t *testing.T) {
	t.Run("error is logged", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)
		_, ctx = logging.CtxRequestID(ctx)

		err := goerr.Wrap(&model.PlatformError{StatusCode: http.StatusForbidden, Err: errors.New("forbidden")},
			"failed to add collaborator", goerr.V("repo_id", 900))
		errutil.HandleError(ctx, "compensation failed", err)

		out := buf.String()
		gt.True(t, strings.Contains(out, `"level":"ERROR"`))
		gt.True(t, strings.Contains(out, "compensation failed"))
	})

	t.Run("cancellation is a warning", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)

		errutil.HandleError(ctx, "reconcile aborted", goerr.Wrap(context.Canceled, "list issues"))

		out := buf.String()
		gt.True(t, strings.Contains(out, `"level":"WARN"`))
		gt.False(t, strings.Contains(out, "sentry.EventID"))
	})

	t.Run("nil error", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)

		errutil.HandleError(ctx, "test message", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
