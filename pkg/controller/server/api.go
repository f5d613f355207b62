package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

type provisionRequest struct {
	Principal model.Principal `json:"principal"`
}

// maxRequestBody bounds API request bodies
const maxRequestBody = 1 << 20

func provisionRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req provisionRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
			writeError(w, r, "invalid provisioning request",
				goerr.Wrap(types.ErrValidationFailed, "failed to decode request body", goerr.V("error", err.Error())))
			return
		}

		input := &model.ProvisionRepositoryInput{
			AssignmentID: types.AssignmentID(chi.URLParam(r, "assignmentID")),
			Principal:    req.Principal,
		}

		repo, err := uc.ProvisionRepository(r.Context(), input)
		if err != nil {
			writeError(w, r, "failed to provision repository", err)
			return
		}

		logging.From(r.Context()).Info("repository provisioned",
			slog.Any("repo_id", repo.RepoID),
			slog.String("full_name", repo.FullName),
		)
		writeJSON(w, http.StatusCreated, repo)
	}
}

func destroyRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoID, err := types.ParseGitHubRepoID(chi.URLParam(r, "repoID"))
		if err != nil {
			writeError(w, r, "invalid repository ID", err)
			return
		}

		if err := uc.DestroyRepository(r.Context(), repoID); err != nil {
			writeError(w, r, "failed to destroy repository", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
