package worker

import (
	"context"
	"time"
)

func (x *Worker) RunOnceForTest(ctx context.Context) (int, error) {
	return x.runOnce(ctx)
}

func (x *Worker) RetryDelayForTest(attempt int) time.Duration {
	return x.retryDelay(attempt)
}

func (x *Worker) ReclaimStaleForTest(ctx context.Context) {
	x.reclaimStale(ctx)
}
