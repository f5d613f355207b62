package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// HandleRepositoryEvent schedules issue reconciliation of a created repository. Other actions
// are ignored. Without a job queue the reconciliation runs in place.
func (x *UseCase) HandleRepositoryEvent(ctx context.Context, event *model.RepositoryEvent) error {
	if event == nil || event.Action != model.RepositoryEventActionCreated {
		return nil
	}
	if event.RepoID <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository event has no repository ID",
			goerr.V("full_name", event.FullName),
		)
	}

	logger := logging.From(ctx).With(
		slog.Any("repo_id", event.RepoID),
		slog.String("full_name", event.FullName),
	)

	queue := x.clients.JobQueue()
	if queue == nil {
		if _, err := x.ReconcileIssues(ctx, event.RepoID); err != nil {
			return err
		}
		return nil
	}

	job, err := queue.Enqueue(ctx, event.RepoID)
	if err != nil {
		return goerr.Wrap(err, "failed to enqueue reconciliation", goerr.V("repo_id", event.RepoID))
	}

	logger.Info("reconciliation queued", slog.String("job_id", string(job.ID)))
	return nil
}
