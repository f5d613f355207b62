package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to a response status. Server side failures are reported.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Info(msg, slog.Any("error", err), slog.Int("status_code", code))
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, repository.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, types.ErrProvisioning), errors.Is(err, types.ErrPlatform):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type config struct {
	ghSecret       types.GitHubAppSecret
	metricsHandler http.Handler
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithMetricsHandler exposes handler on GET /metrics
func WithMetricsHandler(handler http.Handler) Option {
	return func(cfg *config) {
		cfg.metricsHandler = handler
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess, recoverPanic)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	if cfg.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metricsHandler)
	}

	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
				event, err := validateGitHubAppEvent(r, cfg.ghSecret)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to validate GitHub App event", err)
					safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
					return
				}

				if event == nil {
					safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"event ignored"}`))
					return
				}

				if err := uc.HandleRepositoryEvent(r.Context(), event); err != nil {
					errutil.HandleError(r.Context(), "fail to handle repository event", err)
					safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
					return
				}

				safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"reconciliation enqueued"}`))
			})
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/assignments/{assignmentID}/repositories", provisionRepository(uc))
		r.Delete("/repositories/{repoID}", destroyRepository(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
