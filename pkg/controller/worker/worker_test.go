package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/controller/worker"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/mock"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository/memory"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func reconcileOK() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		ReconcileIssuesFunc: func(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
			return &model.ReconcileResult{RepoID: repoID, Created: []string{"Setup"}}, nil
		},
	}
}

// recordingQueue wraps a queue and keeps acknowledged jobs
type recordingQueue struct {
	interfaces.JobQueue
	mu      sync.Mutex
	settled []*model.ReconcileJob
}

func (x *recordingQueue) Acknowledge(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
	job, err := x.JobQueue.Acknowledge(ctx, id, state, lastErr, retryAt)
	if err == nil {
		x.mu.Lock()
		x.settled = append(x.settled, job)
		x.mu.Unlock()
	}
	return job, err
}

func (x *recordingQueue) Settled() []*model.ReconcileJob {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]*model.ReconcileJob{}, x.settled...)
}

func TestWorker_RunOnce(t *testing.T) {
	t.Run("completed job", func(t *testing.T) {
		ctx := context.Background()
		queue := &recordingQueue{JobQueue: memory.NewJobQueue()}
		uc := reconcileOK()
		w := worker.New(uc, queue)

		gt.R1(queue.Enqueue(ctx, 900)).NoError(t)

		n := gt.R1(w.RunOnceForTest(ctx)).NoError(t)
		gt.V(t, n).Equal(1)
		gt.A(t, uc.ReconcileIssuesCalls()).Length(1)
		gt.V(t, uc.ReconcileIssuesCalls()[0].RepoID).Equal(types.GitHubRepoID(900))

		settled := queue.Settled()
		gt.A(t, settled).Length(1)
		gt.V(t, settled[0].State).Equal(types.JobStateCompleted)

		// nothing left
		n = gt.R1(w.RunOnceForTest(ctx)).NoError(t)
		gt.V(t, n).Equal(0)
	})

	t.Run("failed job is retried later", func(t *testing.T) {
		ctx := context.Background()
		now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
		queue := &mock.JobQueueMock{
			DequeueFunc: func(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
				return []*model.ReconcileJob{{ID: "job-1", RepoID: 900, State: types.JobStateInProgress, Attempt: 2}}, nil
			},
			AcknowledgeFunc: func(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
				return &model.ReconcileJob{ID: id, RepoID: 900, State: types.JobStateReady, NotBefore: retryAt}, nil
			},
		}
		uc := &mock.UseCaseMock{
			ReconcileIssuesFunc: func(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
				return nil, errors.New("rate limited")
			},
		}
		w := worker.New(uc, queue,
			worker.WithClock(func() time.Time { return now }),
			worker.WithRetryDelay(10*time.Second, time.Minute),
			worker.WithMaxAttempts(3),
		)

		gt.R1(w.RunOnceForTest(ctx)).NoError(t)

		calls := queue.AcknowledgeCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Id).Equal(types.JobID("job-1"))
		gt.V(t, calls[0].State).Equal(types.JobStateFailed)
		gt.V(t, calls[0].LastErr).Equal("rate limited")
		gt.V(t, calls[0].RetryAt).Equal(now.Add(15 * time.Second))
	})

	t.Run("failed job at last attempt is dead", func(t *testing.T) {
		ctx := context.Background()
		queue := &mock.JobQueueMock{
			DequeueFunc: func(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
				return []*model.ReconcileJob{{ID: "job-1", RepoID: 900, State: types.JobStateInProgress, Attempt: 3}}, nil
			},
			AcknowledgeFunc: func(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
				return &model.ReconcileJob{ID: id, RepoID: 900, State: types.JobStateDead}, nil
			},
		}
		uc := &mock.UseCaseMock{
			ReconcileIssuesFunc: func(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
				return nil, errors.New("forbidden")
			},
		}
		w := worker.New(uc, queue, worker.WithMaxAttempts(3))

		gt.R1(w.RunOnceForTest(ctx)).NoError(t)

		calls := queue.AcknowledgeCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].State).Equal(types.JobStateFailed)
		gt.True(t, calls[0].RetryAt.IsZero())
	})

	t.Run("job is settled after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		queue := &mock.JobQueueMock{
			DequeueFunc: func(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
				return []*model.ReconcileJob{{ID: "job-1", RepoID: 900, State: types.JobStateInProgress, Attempt: 1}}, nil
			},
			AcknowledgeFunc: func(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error) {
				return &model.ReconcileJob{ID: id, RepoID: 900, State: types.JobStateReady}, nil
			},
		}
		uc := &mock.UseCaseMock{
			ReconcileIssuesFunc: func(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
				cancel()
				return nil, ctx.Err()
			},
		}
		w := worker.New(uc, queue)

		gt.R1(w.RunOnceForTest(ctx)).NoError(t)

		calls := queue.AcknowledgeCalls()
		gt.A(t, calls).Length(1)
		gt.NoError(t, calls[0].Ctx.Err())
		gt.False(t, calls[0].RetryAt.IsZero())
	})

	t.Run("dequeue failure", func(t *testing.T) {
		queue := &mock.JobQueueMock{
			DequeueFunc: func(ctx context.Context, n int) ([]*model.ReconcileJob, error) {
				return nil, errors.New("database is locked")
			},
		}
		w := worker.New(&mock.UseCaseMock{}, queue)

		_, err := w.RunOnceForTest(context.Background())
		gt.Error(t, err)
	})
}

func TestWorker_ReclaimStale(t *testing.T) {
	t.Run("orphaned job runs again", func(t *testing.T) {
		ctx := context.Background()
		queue := &recordingQueue{JobQueue: memory.NewJobQueue()}
		uc := reconcileOK()

		// a previous worker took the job and never acknowledged it
		gt.R1(queue.Enqueue(ctx, 900)).NoError(t)
		gt.A(t, gt.R1(queue.Dequeue(ctx, 1)).NoError(t)).Length(1)

		w := worker.New(uc, queue, worker.WithStaleAfter(time.Hour))
		w.ReclaimStaleForTest(ctx)
		gt.V(t, gt.R1(w.RunOnceForTest(ctx)).NoError(t)).Equal(0)

		w = worker.New(uc, queue, worker.WithStaleAfter(time.Nanosecond))
		time.Sleep(time.Millisecond)
		w.ReclaimStaleForTest(ctx)

		n := gt.R1(w.RunOnceForTest(ctx)).NoError(t)
		gt.V(t, n).Equal(1)
		settled := queue.Settled()
		gt.A(t, settled).Length(1)
		gt.V(t, settled[0].State).Equal(types.JobStateCompleted)
		gt.V(t, settled[0].Attempt).Equal(2)
	})

	t.Run("reclaim failure does not stop the worker", func(t *testing.T) {
		queue := &mock.JobQueueMock{
			ReclaimStaleFunc: func(ctx context.Context, staleAfter time.Duration) (int, error) {
				return 0, errors.New("database is locked")
			},
		}
		w := worker.New(&mock.UseCaseMock{}, queue, worker.WithStaleAfter(time.Minute))
		w.ReclaimStaleForTest(context.Background())

		gt.A(t, queue.ReclaimStaleCalls()).Length(1)
		gt.V(t, queue.ReclaimStaleCalls()[0].StaleAfter).Equal(time.Minute)
	})
}

func TestWorker_RetryDelay(t *testing.T) {
	w := worker.New(&mock.UseCaseMock{}, memory.NewJobQueue(), worker.WithRetryDelay(10*time.Second, 30*time.Second))

	gt.V(t, w.RetryDelayForTest(1)).Equal(10 * time.Second)
	gt.V(t, w.RetryDelayForTest(2)).Equal(15 * time.Second)
	gt.V(t, w.RetryDelayForTest(3)).Equal(time.Duration(22500) * time.Millisecond)
	gt.V(t, w.RetryDelayForTest(4)).Equal(30 * time.Second)
	gt.V(t, w.RetryDelayForTest(10)).Equal(30 * time.Second)
}

func TestWorker_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := &recordingQueue{JobQueue: memory.NewJobQueue()}
	uc := reconcileOK()
	w := worker.New(uc, queue,
		worker.WithConcurrency(3),
		worker.WithPollInterval(10*time.Millisecond),
	)

	for _, repoID := range []types.GitHubRepoID{901, 902, 903, 904} {
		gt.R1(queue.Enqueue(ctx, repoID)).NoError(t)
	}

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for len(queue.Settled()) < 4 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	gt.A(t, queue.Settled()).Length(4)

	// enqueued after start is picked up by polling
	gt.R1(queue.Enqueue(ctx, 905)).NoError(t)
	for len(queue.Settled()) < 5 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	gt.A(t, queue.Settled()).Length(5)

	cancel()
	gt.NoError(t, <-done)
	gt.A(t, uc.ReconcileIssuesCalls()).Length(5)
}
