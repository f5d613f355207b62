package model

import (
	"time"

	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

// ReconcileResult is a summary of one reconciliation run in the order of template files.
// Created and Skipped hold issue titles, Discarded holds template file paths.
type ReconcileResult struct {
	RepoID    types.GitHubRepoID `json:"repo_id"`
	Created   []string           `json:"created"`
	Skipped   []string           `json:"skipped"`
	Discarded []string           `json:"discarded"`
}

// ReconcileJob is a queued request to reconcile issues of a repository
type ReconcileJob struct {
	ID        types.JobID
	RepoID    types.GitHubRepoID
	State     types.JobState
	Attempt   int
	NotBefore time.Time
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReconcileJob(repoID types.GitHubRepoID, now time.Time) *ReconcileJob {
	return &ReconcileJob{
		ID:        types.NewJobID(),
		RepoID:    repoID,
		State:     types.JobStateReady,
		NotBefore: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
