package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
)

// TestJobQueue runs all test cases for JobQueue. newQueue must return an empty queue.
func TestJobQueue(t *testing.T, newQueue func(t *testing.T) interfaces.JobQueue) {
	t.Run("EnqueueCoalesce", func(t *testing.T) {
		TestEnqueueCoalesce(t, newQueue(t))
	})
	t.Run("DequeueOnePerRepo", func(t *testing.T) {
		TestDequeueOnePerRepo(t, newQueue(t))
	})
	t.Run("AcknowledgeCompleted", func(t *testing.T) {
		TestAcknowledgeCompleted(t, newQueue(t))
	})
	t.Run("AcknowledgeFailed", func(t *testing.T) {
		TestAcknowledgeFailed(t, newQueue(t))
	})
	t.Run("AcknowledgeInvalid", func(t *testing.T) {
		TestAcknowledgeInvalid(t, newQueue(t))
	})
	t.Run("ReclaimStale", func(t *testing.T) {
		TestReclaimStale(t, newQueue(t))
	})
	t.Run("ReclaimStaleSuperseded", func(t *testing.T) {
		TestReclaimStaleSuperseded(t, newQueue(t))
	})
}

func findJob(jobs []*model.ReconcileJob, repoID types.GitHubRepoID) *model.ReconcileJob {
	for _, job := range jobs {
		if job.RepoID == repoID {
			return job
		}
	}
	return nil
}

// TestEnqueueCoalesce tests that a repository has at most one ready job
func TestEnqueueCoalesce(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	first, err := q.Enqueue(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, first.State).Equal(types.JobStateReady)
	gt.V(t, first.RepoID).Equal(repoID)
	gt.V(t, first.Attempt).Equal(0)

	second, err := q.Enqueue(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, second.ID).Equal(first.ID)

	other, err := q.Enqueue(ctx, NewRepoID())
	gt.NoError(t, err)
	gt.V(t, other.ID).NotEqual(first.ID)

	_, err = q.Enqueue(ctx, 0)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

// TestDequeueOnePerRepo tests that a repository never has two jobs in progress
func TestDequeueOnePerRepo(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	job := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)

	jobs, err := q.Dequeue(ctx, 10)
	gt.NoError(t, err)
	dequeued := findJob(jobs, repoID)
	gt.True(t, dequeued != nil)
	gt.V(t, dequeued.ID).Equal(job.ID)
	gt.V(t, dequeued.State).Equal(types.JobStateInProgress)
	gt.V(t, dequeued.Attempt).Equal(1)

	// Another event arrives while the first job is running
	next := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.V(t, next.ID).NotEqual(job.ID)

	jobs, err = q.Dequeue(ctx, 10)
	gt.NoError(t, err)
	gt.True(t, findJob(jobs, repoID) == nil)

	gt.R1(q.Acknowledge(ctx, job.ID, types.JobStateCompleted, "", time.Time{})).NoError(t)

	jobs, err = q.Dequeue(ctx, 10)
	gt.NoError(t, err)
	dequeued = findJob(jobs, repoID)
	gt.True(t, dequeued != nil)
	gt.V(t, dequeued.ID).Equal(next.ID)

	// Dequeue honors the limit
	for range 3 {
		gt.R1(q.Enqueue(ctx, NewRepoID())).NoError(t)
	}
	jobs, err = q.Dequeue(ctx, 2)
	gt.NoError(t, err)
	gt.A(t, jobs).Length(2)
}

// TestAcknowledgeCompleted tests that a completed job is not handed out again
func TestAcknowledgeCompleted(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	job := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.R1(q.Dequeue(ctx, 10)).NoError(t)

	settled, err := q.Acknowledge(ctx, job.ID, types.JobStateCompleted, "", time.Time{})
	gt.NoError(t, err)
	gt.V(t, settled.State).Equal(types.JobStateCompleted)

	jobs, err := q.Dequeue(ctx, 10)
	gt.NoError(t, err)
	gt.True(t, findJob(jobs, repoID) == nil)
}

// TestAcknowledgeFailed tests retry and dead letter of failed jobs
func TestAcknowledgeFailed(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	job := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.R1(q.Dequeue(ctx, 10)).NoError(t)

	// Retry in the future is not dequeued yet
	retryAt := time.Now().Add(time.Hour)
	settled, err := q.Acknowledge(ctx, job.ID, types.JobStateFailed, "boom", retryAt)
	gt.NoError(t, err)
	gt.V(t, settled.State).Equal(types.JobStateReady)
	gt.V(t, settled.LastError).Equal("boom")
	gt.True(t, settled.NotBefore.After(time.Now()))

	jobs, err := q.Dequeue(ctx, 10)
	gt.NoError(t, err)
	gt.True(t, findJob(jobs, repoID) == nil)

	// Retry in the past is dequeued with the next attempt
	other := gt.R1(q.Enqueue(ctx, NewRepoID())).NoError(t)
	jobs = gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	gt.True(t, findJob(jobs, other.RepoID) != nil)

	settled, err = q.Acknowledge(ctx, other.ID, types.JobStateFailed, "boom", time.Now().Add(-time.Second))
	gt.NoError(t, err)
	gt.V(t, settled.State).Equal(types.JobStateReady)

	jobs = gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	retried := findJob(jobs, other.RepoID)
	gt.True(t, retried != nil)
	gt.V(t, retried.Attempt).Equal(2)

	// No retry left
	settled, err = q.Acknowledge(ctx, other.ID, types.JobStateFailed, "boom again", time.Time{})
	gt.NoError(t, err)
	gt.V(t, settled.State).Equal(types.JobStateDead)
	gt.V(t, settled.LastError).Equal("boom again")

	jobs = gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	gt.True(t, findJob(jobs, other.RepoID) == nil)
}

// TestAcknowledgeInvalid tests that only in_progress jobs can be acknowledged
func TestAcknowledgeInvalid(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()

	job := gt.R1(q.Enqueue(ctx, NewRepoID())).NoError(t)

	_, err := q.Acknowledge(ctx, job.ID, types.JobStateCompleted, "", time.Time{})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	gt.R1(q.Dequeue(ctx, 10)).NoError(t)

	_, err = q.Acknowledge(ctx, job.ID, types.JobStateInProgress, "", time.Time{})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	_, err = q.Acknowledge(ctx, types.NewJobID(), types.JobStateCompleted, "", time.Time{})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestReclaimStale tests that an in_progress job never acknowledged runs again once its lease
// expires
func TestReclaimStale(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	job := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	jobs := gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	gt.True(t, findJob(jobs, repoID) != nil)

	// The lease has not expired yet
	gt.V(t, gt.R1(q.ReclaimStale(ctx, time.Hour)).NoError(t)).Equal(0)
	jobs = gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	gt.True(t, findJob(jobs, repoID) == nil)

	gt.V(t, gt.R1(q.ReclaimStale(ctx, 0)).NoError(t)).Equal(1)

	// A new event coalesces onto the reclaimed job
	again := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.V(t, again.ID).Equal(job.ID)

	jobs = gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	reclaimed := findJob(jobs, repoID)
	gt.True(t, reclaimed != nil)
	gt.V(t, reclaimed.ID).Equal(job.ID)
	gt.V(t, reclaimed.Attempt).Equal(2)
	gt.V(t, reclaimed.LastError).Equal(repository.StaleJobError)

	settled := gt.R1(q.Acknowledge(ctx, job.ID, types.JobStateCompleted, "", time.Time{})).NoError(t)
	gt.V(t, settled.State).Equal(types.JobStateCompleted)

	// Settled jobs are not reclaimed
	gt.V(t, gt.R1(q.ReclaimStale(ctx, 0)).NoError(t)).Equal(0)
}

// TestReclaimStaleSuperseded tests that a stale job is dropped when its repository already has
// a ready job
func TestReclaimStaleSuperseded(t *testing.T, q interfaces.JobQueue) {
	ctx := context.Background()
	repoID := NewRepoID()

	stale := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	next := gt.R1(q.Enqueue(ctx, repoID)).NoError(t)
	gt.V(t, next.ID).NotEqual(stale.ID)

	gt.V(t, gt.R1(q.ReclaimStale(ctx, 0)).NoError(t)).Equal(0)

	jobs := gt.R1(q.Dequeue(ctx, 10)).NoError(t)
	gt.A(t, jobs).Length(1)
	gt.V(t, jobs[0].ID).Equal(next.ID)

	// The stale job can no longer be acknowledged
	_, err := q.Acknowledge(ctx, stale.ID, types.JobStateCompleted, "", time.Time{})
	gt.Error(t, err)
}
