package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/octoclass/pkg/controller/worker"
	"github.com/urfave/cli/v3"
)

type Worker struct {
	concurrency       int64
	pollInterval      time.Duration
	maxAttempts       int64
	retryInitialDelay time.Duration
	retryMaxDelay     time.Duration
	staleAfter        time.Duration
}

func (x *Worker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "worker-concurrency",
			Usage:       "Number of reconcile workers, 0 disables the worker",
			Category:    "Worker",
			Value:       2,
			Destination: &x.concurrency,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_CONCURRENCY"),
		},
		&cli.DurationFlag{
			Name:        "worker-poll-interval",
			Usage:       "Interval to poll the reconcile job queue",
			Category:    "Worker",
			Value:       time.Second,
			Destination: &x.pollInterval,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_POLL_INTERVAL"),
		},
		&cli.Int64Flag{
			Name:        "worker-max-attempts",
			Usage:       "Attempts of a reconcile job before it is marked as dead",
			Category:    "Worker",
			Value:       5,
			Destination: &x.maxAttempts,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_MAX_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "worker-retry-initial-delay",
			Usage:       "Delay before the first retry of a failed reconcile job",
			Category:    "Worker",
			Value:       10 * time.Second,
			Destination: &x.retryInitialDelay,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_RETRY_INITIAL_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "worker-retry-max-delay",
			Usage:       "Upper bound of delay between retries",
			Category:    "Worker",
			Value:       10 * time.Minute,
			Destination: &x.retryMaxDelay,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_RETRY_MAX_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "worker-stale-after",
			Usage:       "Lease of a running reconcile job; unacknowledged jobs are queued again after it, 0 disables",
			Category:    "Worker",
			Value:       30 * time.Minute,
			Destination: &x.staleAfter,
			Sources:     cli.EnvVars("OCTOCLASS_WORKER_STALE_AFTER"),
		},
	}
}

func (x *Worker) Enabled() bool {
	return x.concurrency > 0
}

func (x *Worker) Options() []worker.Option {
	return []worker.Option{
		worker.WithConcurrency(int(x.concurrency)),
		worker.WithPollInterval(x.pollInterval),
		worker.WithMaxAttempts(int(x.maxAttempts)),
		worker.WithRetryDelay(x.retryInitialDelay, x.retryMaxDelay),
		worker.WithStaleAfter(x.staleAfter),
	}
}

func (x *Worker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("Concurrency", x.concurrency),
		slog.Duration("PollInterval", x.pollInterval),
		slog.Int64("MaxAttempts", x.maxAttempts),
		slog.Duration("RetryInitialDelay", x.retryInitialDelay),
		slog.Duration("RetryMaxDelay", x.retryMaxDelay),
		slog.Duration("StaleAfter", x.staleAfter),
	)
}
