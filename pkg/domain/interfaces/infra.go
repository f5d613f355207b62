package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the gateway to the hosting platform. Every call is authenticated by the given
// credential. Remote failures are returned as *model.PlatformError and are never retried.
type GitHub interface {
	CreateRepository(ctx context.Context, cred *model.Credential, input *model.CreateRepositoryInput) (*model.GitHubRepo, error)
	DeleteRepository(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID) error
	AddCollaborator(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, login string) error
	AddTeamRepository(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, orgID types.GitHubOrgID, teamID types.GitHubTeamID) error
	CopyContents(ctx context.Context, cred *model.Credential, from, to types.GitHubRepoID) error

	ListFiles(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, path string) ([]*model.RepoFile, error)
	GetFileContent(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, path string) ([]byte, error)

	ListIssues(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, state types.IssueState) ([]*model.RemoteIssue, error)
	CreateIssue(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, tmpl *model.IssueTemplate) (*model.RemoteIssue, error)
}
