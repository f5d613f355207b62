package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
)

type assignmentData struct {
	record *model.AssignmentRecord
	specs  []*model.IssueSpec
}

type classroomRepository struct {
	mu          sync.RWMutex
	assignments map[types.AssignmentID]*assignmentData
	repos       map[types.GitHubRepoID]*model.ProvisionedRepository
}

// Assignment operations

func (r *classroomRepository) PutAssignment(ctx context.Context, assignment model.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid assignment", goerr.V("error", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := model.NewAssignmentRecord(assignment)
	if data, exists := r.assignments[rec.ID]; exists {
		data.record = rec
	} else {
		r.assignments[rec.ID] = &assignmentData{record: rec}
	}

	return nil
}

func (r *classroomRepository) GetAssignment(ctx context.Context, id types.AssignmentID) (model.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.assignments[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "assignment not found",
			goerr.V("assignmentID", id),
		)
	}

	rec := *data.record
	return rec.Assignment()
}

// IssueSpec operations

func (r *classroomRepository) AddIssueSpec(ctx context.Context, spec *model.IssueSpec) error {
	if err := spec.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid issue spec", goerr.V("error", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.assignments[spec.AssignmentID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "assignment not found",
			goerr.V("assignmentID", spec.AssignmentID),
		)
	}

	stored := copyIssueSpec(spec)
	if stored.Position == 0 {
		last := 0
		for _, s := range data.specs {
			last = max(last, s.Position)
		}
		stored.Position = last + 1
	}

	data.specs = append(data.specs, stored)
	return nil
}

func (r *classroomRepository) ListIssueSpecs(ctx context.Context, id types.AssignmentID) ([]*model.IssueSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.assignments[id]
	if !exists {
		return nil, nil
	}

	specs := make([]*model.IssueSpec, 0, len(data.specs))
	for _, s := range data.specs {
		specs = append(specs, copyIssueSpec(s))
	}
	model.SortIssueSpecs(specs)

	return specs, nil
}

// ProvisionedRepository operations

func (r *classroomRepository) CreateProvisionedRepository(ctx context.Context, repo *model.ProvisionedRepository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid provisioned repository", goerr.V("error", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[repo.RepoID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "provisioned repository already exists",
			goerr.V("repoID", repo.RepoID),
		)
	}

	r.repos[repo.RepoID] = copyProvisionedRepository(repo)
	return nil
}

func (r *classroomRepository) GetProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.ProvisionedRepository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[repoID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "provisioned repository not found",
			goerr.V("repoID", repoID),
		)
	}

	return copyProvisionedRepository(repo), nil
}

func (r *classroomRepository) ListProvisionedRepositories(ctx context.Context, id types.AssignmentID) ([]*model.ProvisionedRepository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var repos []*model.ProvisionedRepository
	for _, repo := range r.repos {
		if repo.AssignmentID == id {
			repos = append(repos, copyProvisionedRepository(repo))
		}
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].RepoID < repos[j].RepoID
	})

	return repos, nil
}

func (r *classroomRepository) DeleteProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[repoID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "provisioned repository not found",
			goerr.V("repoID", repoID),
		)
	}

	delete(r.repos, repoID)
	return nil
}

func copyIssueSpec(spec *model.IssueSpec) *model.IssueSpec {
	copied := *spec
	return &copied
}

func copyProvisionedRepository(repo *model.ProvisionedRepository) *model.ProvisionedRepository {
	copied := *repo
	return &copied
}
