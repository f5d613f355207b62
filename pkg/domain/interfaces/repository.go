package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . ClassroomRepository JobQueue

// ClassroomRepository manages local records of assignments and provisioned repositories
type ClassroomRepository interface {
	// Assignment operations
	PutAssignment(ctx context.Context, assignment model.Assignment) error
	GetAssignment(ctx context.Context, id types.AssignmentID) (model.Assignment, error)

	// IssueSpec operations. A spec with Position 0 is appended at the end of the list. The
	// given spec is not modified.
	AddIssueSpec(ctx context.Context, spec *model.IssueSpec) error
	ListIssueSpecs(ctx context.Context, id types.AssignmentID) ([]*model.IssueSpec, error)

	// ProvisionedRepository operations, keyed by the remote repository ID
	CreateProvisionedRepository(ctx context.Context, repo *model.ProvisionedRepository) error
	GetProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.ProvisionedRepository, error)
	ListProvisionedRepositories(ctx context.Context, id types.AssignmentID) ([]*model.ProvisionedRepository, error)
	DeleteProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) error
}

// JobQueue is a durable queue of reconciliation jobs
type JobQueue interface {
	// Enqueue adds a ready job. It returns the existing job instead when the repository already
	// has a ready one.
	Enqueue(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileJob, error)
	// Dequeue moves up to n ready jobs whose NotBefore has passed to in_progress. A repository
	// never has two jobs in progress at once.
	Dequeue(ctx context.Context, n int) ([]*model.ReconcileJob, error)
	// Acknowledge settles an in_progress job. A failed job goes back to ready with the given
	// retryAt, or to dead when retryAt is zero.
	Acknowledge(ctx context.Context, id types.JobID, state types.JobState, lastErr string, retryAt time.Time) (*model.ReconcileJob, error)
	// ReclaimStale returns in_progress jobs not updated for staleAfter to ready, so that a job
	// orphaned by a crashed process runs again. A stale job whose repository already has a
	// ready job is marked as dead instead. It returns the number of reclaimed jobs.
	ReclaimStale(ctx context.Context, staleAfter time.Duration) (int, error)
}
