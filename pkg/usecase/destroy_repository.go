package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// DestroyRepository deletes a provisioned repository on GitHub and its local record. A failure
// of the remote deletion is reported and does not keep the local record.
func (x *UseCase) DestroyRepository(ctx context.Context, repoID types.GitHubRepoID) error {
	gh, err := x.github()
	if err != nil {
		return err
	}
	store, err := x.classroom()
	if err != nil {
		return err
	}

	logger := logging.From(ctx).With(slog.Any("repo_id", repoID))

	provisioned, err := store.GetProvisionedRepository(ctx, repoID)
	if err != nil {
		return goerr.Wrap(err, "failed to get provisioned repository", goerr.V("repo_id", repoID))
	}

	assignment, err := store.GetAssignment(ctx, provisioned.AssignmentID)
	switch {
	case err == nil:
		cred := assignment.Meta().Organization.Credential()
		if err := gh.DeleteRepository(ctx, cred, repoID); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				logger.Info("repository is already deleted on GitHub")
			} else {
				errutil.HandleError(ctx, "failed to delete repository on GitHub", err)
			}
		}

	case errors.Is(err, repository.ErrNotFound):
		logger.Warn("assignment of provisioned repository not found, skip remote deletion",
			slog.String("assignment_id", provisioned.AssignmentID.String()),
		)

	default:
		return goerr.Wrap(err, "failed to get assignment", goerr.V("assignment_id", provisioned.AssignmentID))
	}

	if err := store.DeleteProvisionedRepository(ctx, repoID); err != nil {
		return goerr.Wrap(err, "failed to delete provisioned repository", goerr.V("repo_id", repoID))
	}

	logger.Info("provisioned repository destroyed", slog.String("full_name", provisioned.FullName))
	return nil
}
