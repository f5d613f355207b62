package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Worker takes reconcile jobs from the queue and runs issue reconciliation for them
type Worker struct {
	uc      interfaces.UseCase
	queue   interfaces.JobQueue
	metrics *metrics.Metrics

	concurrency  int
	pollInterval time.Duration
	maxAttempts  int
	initialDelay time.Duration
	maxDelay     time.Duration
	staleAfter   time.Duration
	now          func() time.Time
}

type Option func(*Worker)

func WithConcurrency(n int) Option {
	return func(x *Worker) {
		if n > 0 {
			x.concurrency = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(x *Worker) {
		x.pollInterval = d
	}
}

// WithMaxAttempts sets how many times a job runs before it is marked as dead
func WithMaxAttempts(n int) Option {
	return func(x *Worker) {
		x.maxAttempts = n
	}
}

// WithRetryDelay sets the exponential delay between attempts of a failed job
func WithRetryDelay(initial, max time.Duration) Option {
	return func(x *Worker) {
		x.initialDelay = initial
		x.maxDelay = max
	}
}

// WithStaleAfter sets the lease of a dequeued job. A job not acknowledged within it, because
// the process running it stopped, is returned to the queue. Zero disables reclaiming.
func WithStaleAfter(d time.Duration) Option {
	return func(x *Worker) {
		x.staleAfter = d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(x *Worker) {
		x.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Worker) {
		x.now = now
	}
}

func New(uc interfaces.UseCase, queue interfaces.JobQueue, options ...Option) *Worker {
	x := &Worker{
		uc:           uc,
		queue:        queue,
		concurrency:  2,
		pollInterval: time.Second,
		maxAttempts:  5,
		initialDelay: 10 * time.Second,
		maxDelay:     10 * time.Minute,
		staleAfter:   30 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// Run polls the queue with the configured number of goroutines until ctx is cancelled
func (x *Worker) Run(ctx context.Context) error {
	logging.From(ctx).Info("starting reconcile worker",
		slog.Int("concurrency", x.concurrency),
		slog.Duration("poll_interval", x.pollInterval),
		slog.Int("max_attempts", x.maxAttempts),
		slog.Duration("stale_after", x.staleAfter),
	)

	eg, ctx := errgroup.WithContext(ctx)
	if x.staleAfter > 0 {
		x.reclaimStale(ctx)
		eg.Go(func() error {
			return x.reclaimLoop(ctx)
		})
	}
	for i := range x.concurrency {
		workerCtx := logging.With(ctx, logging.From(ctx).With(slog.Int("worker", i)))
		eg.Go(func() error {
			return x.loop(workerCtx)
		})
	}

	return eg.Wait()
}

func (x *Worker) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := x.runOnce(ctx)
		if err != nil {
			errutil.HandleError(ctx, "failed to dequeue reconcile job", err)
		}
		if err == nil && n > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(x.pollInterval):
		}
	}
}

// runOnce takes one ready job and processes it. It returns the number of processed jobs.
func (x *Worker) reclaimLoop(ctx context.Context) error {
	interval := max(x.staleAfter/2, x.pollInterval, time.Millisecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			x.reclaimStale(ctx)
		}
	}
}

func (x *Worker) reclaimStale(ctx context.Context) {
	n, err := x.queue.ReclaimStale(ctx, x.staleAfter)
	if err != nil {
		errutil.HandleError(ctx, "failed to reclaim stale reconcile jobs", err)
		return
	}
	if n > 0 {
		logging.From(ctx).Warn("reclaimed stale reconcile jobs", slog.Int("count", n))
	}
}

func (x *Worker) runOnce(ctx context.Context) (int, error) {
	jobs, err := x.queue.Dequeue(ctx, 1)
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		x.process(ctx, job)
	}
	return len(jobs), nil
}

func (x *Worker) process(ctx context.Context, job *model.ReconcileJob) {
	ctx = logging.WithRequestID(ctx, types.RequestID("job-"+string(job.ID)))
	logger := logging.From(ctx).With(
		slog.String("job_id", string(job.ID)),
		slog.Any("repo_id", job.RepoID),
		slog.Int("attempt", job.Attempt),
	)
	ctx = logging.With(ctx, logger)

	result, err := x.uc.ReconcileIssues(ctx, job.RepoID)

	// the job must be settled even when ctx is cancelled during reconciliation
	ackCtx := logging.Detach(ctx)

	if err != nil {
		errutil.HandleError(ctx, "failed to reconcile issues", err)

		var retryAt time.Time
		if job.Attempt < x.maxAttempts {
			retryAt = x.now().Add(x.retryDelay(job.Attempt))
		}
		x.acknowledge(ackCtx, job, types.JobStateFailed, err.Error(), retryAt)
		return
	}

	logger.Info("issues reconciled",
		slog.Any("created", result.Created),
		slog.Any("skipped", result.Skipped),
		slog.Any("discarded", result.Discarded),
	)
	x.acknowledge(ackCtx, job, types.JobStateCompleted, "", time.Time{})
}

func (x *Worker) acknowledge(ctx context.Context, job *model.ReconcileJob, state types.JobState, lastErr string, retryAt time.Time) {
	settled, err := x.queue.Acknowledge(ctx, job.ID, state, lastErr, retryAt)
	if err != nil {
		errutil.HandleError(ctx, "failed to acknowledge reconcile job", err)
		return
	}

	x.metrics.JobSettled(settled.State)
	logging.From(ctx).Info("reconcile job settled",
		slog.String("state", string(settled.State)),
		slog.Time("not_before", settled.NotBefore),
	)
}

// retryDelay returns the delay before the next run of a job that failed at attempt
func (x *Worker) retryDelay(attempt int) time.Duration {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = x.initialDelay
	bo.MaxInterval = x.maxDelay
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()

	delay := bo.NextBackOff()
	for i := 1; i < attempt; i++ {
		delay = bo.NextBackOff()
	}
	return delay
}
