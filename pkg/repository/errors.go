package repository

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")
)

// Last errors recorded on jobs settled by ReclaimStale
const (
	StaleJobError      = "job was not acknowledged before its lease expired"
	SupersededJobError = "stale job superseded by a ready job of the same repository"
)

// AllowToAck returns an error if an in_progress job can not be settled with the state
func AllowToAck(state types.JobState) error {
	switch state {
	case types.JobStateCompleted, types.JobStateFailed:
		return nil
	default:
		return goerr.Wrap(ErrInvalidInput, "job can be acknowledged only as completed or failed",
			goerr.V("state", state),
		)
	}
}

// NextJobState returns the state an acknowledged job moves to. A failed job is retried at
// retryAt, or becomes dead when retryAt is zero.
func NextJobState(state types.JobState, retryAt time.Time) types.JobState {
	if state != types.JobStateFailed {
		return state
	}
	if retryAt.IsZero() {
		return types.JobStateDead
	}
	return types.JobStateReady
}
