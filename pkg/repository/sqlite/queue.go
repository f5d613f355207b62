package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"github.com/secmon-lab/octoclass/pkg/utils/safe"
)

var _ interfaces.JobQueue = (*JobQueue)(nil)

// JobQueue is the SQLite implementation of interfaces.JobQueue. Settled jobs are kept in the
// table with their final state.
type JobQueue struct {
	db *DB
}

func NewJobQueue(db *DB) *JobQueue {
	return &JobQueue{db: db}
}

const jobColumns = `id, repo_id, state, attempt, not_before, last_error, created_at, updated_at`

func (q *JobQueue) Enqueue(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileJob, error) {
	if repoID <= 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid repository ID", goerr.V("repoID", repoID))
	}

	tx, err := q.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	query := `SELECT ` + jobColumns + ` FROM reconcile_jobs WHERE repo_id = ? AND state = ? ORDER BY created_at LIMIT 1`
	existing, err := scanJob(tx.QueryRowContext(ctx, query, repoID, types.JobStateReady))
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, goerr.Wrap(err, "failed to find ready job", goerr.V("repoID", repoID))
	}

	job := model.NewReconcileJob(repoID, time.Now().UTC())
	insert := `INSERT INTO reconcile_jobs (` + jobColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insert,
		job.ID, job.RepoID, job.State, job.Attempt, toUnix(job.NotBefore), job.LastError,
		toUnix(job.CreatedAt), toUnix(job.UpdatedAt),
	); err != nil {
		return nil, goerr.Wrap(err, "failed to insert job", goerr.V("repoID", repoID))
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit job")
	}

	return job, nil
}

func (q *JobQueue) Dequeue(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
	if n <= 0 {
		return nil, nil
	}

	tx, err := q.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	now := time.Now().UTC()
	query := `SELECT ` + jobColumns + ` FROM reconcile_jobs
		WHERE state = ? AND not_before <= ?
		AND repo_id NOT IN (SELECT repo_id FROM reconcile_jobs WHERE state = ?)
		ORDER BY created_at, rowid`

	rows, err := tx.QueryContext(ctx, query, types.JobStateReady, toUnix(now), types.JobStateInProgress)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select ready jobs")
	}

	jobs, err := pickJobs(rows, n)
	if err != nil {
		safe.Close(ctx, rows)
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close rows")
	}

	const update = `UPDATE reconcile_jobs SET state = ?, attempt = attempt + 1, updated_at = ? WHERE id = ?`
	for _, job := range jobs {
		if _, err := tx.ExecContext(ctx, update, types.JobStateInProgress, toUnix(now), job.ID); err != nil {
			return nil, goerr.Wrap(err, "failed to mark job in progress", goerr.V("jobID", job.ID))
		}
		job.State = types.JobStateInProgress
		job.Attempt++
		job.UpdatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit dequeue")
	}

	return jobs, nil
}

type jobRows interface {
	scanner
	Next() bool
	Err() error
}

// pickJobs takes up to n jobs from rows, one per repository
func pickJobs(rows jobRows, n int) ([]*model.ReconcileJob, error) {
	var jobs []*model.ReconcileJob
	picked := make(map[types.GitHubRepoID]struct{})
	for len(jobs) < n && rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan job")
		}
		if _, found := picked[job.RepoID]; found {
			continue
		}
		picked[job.RepoID] = struct{}{}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate ready jobs")
	}
	return jobs, nil
}

func (q *JobQueue) Acknowledge(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
	if err := repository.AllowToAck(state); err != nil {
		return nil, err
	}

	tx, err := q.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	query := `SELECT ` + jobColumns + ` FROM reconcile_jobs WHERE id = ?`
	job, err := scanJob(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get job", goerr.V("jobID", id))
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

	const update = `UPDATE reconcile_jobs SET state = ?, not_before = ?, last_error = ?, updated_at = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, update,
		job.State, toUnix(job.NotBefore), job.LastError, toUnix(job.UpdatedAt), job.ID,
	); err != nil {
		return nil, goerr.Wrap(err, "failed to acknowledge job", goerr.V("jobID", id))
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit acknowledge")
	}

	return job, nil
}

// ReclaimStale treats the updated_at set by Dequeue as the lease of an in_progress job
func (q *JobQueue) ReclaimStale(ctx context.Context, staleAfter time.Duration) (int, error) {
	tx, err := q.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	now := time.Now().UTC()
	cutoff := toUnix(now.Add(-staleAfter))

	const supersede = `UPDATE reconcile_jobs SET state = ?, last_error = ?, updated_at = ?
		WHERE state = ? AND updated_at <= ?
		AND repo_id IN (SELECT repo_id FROM reconcile_jobs WHERE state = ?)`
	if _, err := tx.ExecContext(ctx, supersede,
		types.JobStateDead, repository.SupersededJobError, toUnix(now),
		types.JobStateInProgress, cutoff, types.JobStateReady,
	); err != nil {
		return 0, goerr.Wrap(err, "failed to settle superseded stale jobs")
	}

	const reclaim = `UPDATE reconcile_jobs SET state = ?, not_before = ?, last_error = ?, updated_at = ?
		WHERE state = ? AND updated_at <= ?`
	res, err := tx.ExecContext(ctx, reclaim,
		types.JobStateReady, toUnix(now), repository.StaleJobError, toUnix(now),
		types.JobStateInProgress, cutoff,
	)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to reclaim stale jobs")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count reclaimed jobs")
	}

	if err := tx.Commit(); err != nil {
		return 0, goerr.Wrap(err, "failed to commit reclaim")
	}

	return int(n), nil
}

func scanJob(s scanner) (*model.ReconcileJob, error) {
	var (
		job                             model.ReconcileJob
		notBefore, createdAt, updatedAt int64
	)
	if err := s.Scan(
		&job.ID, &job.RepoID, &job.State, &job.Attempt, &notBefore, &job.LastError, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	job.NotBefore = fromUnix(notBefore)
	job.CreatedAt = fromUnix(createdAt)
	job.UpdatedAt = fromUnix(updatedAt)
	return &job, nil
}
