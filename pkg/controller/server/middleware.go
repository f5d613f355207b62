package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

const headerRequestID = "X-Request-Id"

// preProcess assigns a request ID, binds a request scoped logger to the context and writes
// an access log after the handler returns.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)
		w.Header().Set(headerRequestID, string(reqID))

		sw := &statusWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		defer func() {
			logger.Info("http access",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status_code", sw.statusCode),
				slog.Int64("content_length", r.ContentLength),
				slog.String("user_agent", r.UserAgent()),
				slog.Duration("elapsed", time.Since(requestedAt)),
			)
		}()

		next.ServeHTTP(sw, r.WithContext(ctx))
	})
}

// recoverPanic turns a handler panic into a reported error and a 500 response
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := goerr.New("panic in http handler",
				goerr.V("panic", rec),
				goerr.V("method", r.Method),
				goerr.V("path", r.URL.Path),
			)
			errutil.HandleError(r.Context(), "recovered from panic", err)

			if sw, ok := w.(*statusWriter); ok && sw.wroteHeader {
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (x *statusWriter) WriteHeader(code int) {
	if x.wroteHeader {
		return
	}
	x.statusCode = code
	x.wroteHeader = true
	x.ResponseWriter.WriteHeader(code)
}

func (x *statusWriter) Write(b []byte) (int, error) {
	x.wroteHeader = true
	return x.ResponseWriter.Write(b)
}
