package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

type UseCase interface {
	ProvisionRepository(ctx context.Context, input *model.ProvisionRepositoryInput) (*model.ProvisionedRepository, error)
	DestroyRepository(ctx context.Context, repoID types.GitHubRepoID) error
	ReconcileIssues(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error)
	HandleRepositoryEvent(ctx context.Context, event *model.RepositoryEvent) error
}
