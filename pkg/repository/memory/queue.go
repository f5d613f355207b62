package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
)

// jobQueue keeps ready and in_progress jobs in enqueue order. Completed and dead jobs are
// dropped once acknowledged.
type jobQueue struct {
	mu     sync.Mutex
	queued []*model.ReconcileJob
}

func (q *jobQueue) Enqueue(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileJob, error) {
	if repoID <= 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid repository ID", goerr.V("repoID", repoID))
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, job := range q.queued {
		if job.RepoID == repoID && job.State == types.JobStateReady {
			return copyJob(job), nil
		}
	}

	job := model.NewReconcileJob(repoID, time.Now().UTC())
	q.queued = append(q.queued, job)
	return copyJob(job), nil
}

func (q *jobQueue) Dequeue(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().UTC()
	busy := make(map[types.GitHubRepoID]struct{})
	for _, job := range q.queued {
		if job.State == types.JobStateInProgress {
			busy[job.RepoID] = struct{}{}
		}
	}

	var result []*model.ReconcileJob
	for _, job := range q.queued {
		if len(result) >= n {
			break
		}
		if job.State != types.JobStateReady || job.NotBefore.After(now) {
			continue
		}
		if _, found := busy[job.RepoID]; found {
			continue
		}

		busy[job.RepoID] = struct{}{}
		job.State = types.JobStateInProgress
		job.Attempt++
		job.UpdatedAt = now
		result = append(result, copyJob(job))
	}

	return result, nil
}

func (q *jobQueue) Acknowledge(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
	if err := repository.AllowToAck(state); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for i, job := range q.queued {
		if job.ID != id {
			continue
		}
		if job.State != types.JobStateInProgress {
			return nil, goerr.Wrap(repository.ErrInvalidInput, "job is not in progress",
				goerr.V("jobID", id),
				goerr.V("state", job.State),
			)
		}

		job.LastError = lastErr
		job.UpdatedAt = time.Now().UTC()
		job.State = repository.NextJobState(state, retryAt)
		if job.State == types.JobStateReady {
			job.NotBefore = retryAt.UTC()
		}

		settled := copyJob(job)
		if settled.State != types.JobStateReady {
			q.queued = append(q.queued[:i], q.queued[i+1:]...)
		}
		return settled, nil
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
}

func copyJob(job *model.ReconcileJob) *model.ReconcileJob {
	copied := *job
	return &copied
}

func (q *jobQueue) ReclaimStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().UTC()
	cutoff := now.Add(-staleAfter)

	ready := make(map[types.GitHubRepoID]struct{})
	for _, job := range q.queued {
		if job.State == types.JobStateReady {
			ready[job.RepoID] = struct{}{}
		}
	}

	var reclaimed int
	kept := q.queued[:0]
	for _, job := range q.queued {
		if job.State != types.JobStateInProgress || job.UpdatedAt.After(cutoff) {
			kept = append(kept, job)
			continue
		}

		// settled jobs are dropped, as Acknowledge does
		if _, found := ready[job.RepoID]; found {
			continue
		}

		ready[job.RepoID] = struct{}{}
		job.State = types.JobStateReady
		job.NotBefore = now
		job.LastError = repository.StaleJobError
		job.UpdatedAt = now
		kept = append(kept, job)
		reclaimed++
	}
	q.queued = kept

	return reclaimed, nil
}
