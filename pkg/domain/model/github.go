package model

import (
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

// Credential is an explicit authentication context for a GitHub API call. Token takes
// precedence over InstallID when both are set.
type Credential struct {
	InstallID types.GitHubAppInstallID
	Token     types.GitHubToken `masq:"secret"`
}

func (x *Credential) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrInvalidOption, "credential is nil")
	}
	if x.InstallID == 0 && x.Token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "credential has neither install ID nor token")
	}
	return nil
}

// GitHubRepo is a repository on GitHub identified by its numeric ID
type GitHubRepo struct {
	ID      types.GitHubRepoID
	Owner   string
	Name    string
	HTMLURL string
	Private bool
}

func (x *GitHubRepo) FullName() string {
	return x.Owner + "/" + x.Name
}

// RepoFile is an entry of a repository directory listing
type RepoFile struct {
	Path string
	Type types.RepoFileType
}

// RemoteIssue is an issue owned by GitHub. Title is the natural key within one repository.
type RemoteIssue struct {
	Number int
	Title  string
	Body   string
	Labels []string
	State  types.IssueState
}

// RepositoryEvent is the part of GitHub "repository" webhook event that octoclass consumes
type RepositoryEvent struct {
	Action    string
	RepoID    types.GitHubRepoID
	FullName  string
	InstallID types.GitHubAppInstallID
}

const RepositoryEventActionCreated = "created"

// PlatformError is a failed remote call to GitHub. It satisfies types.ErrPlatform, and
// types.ErrNotFound as well when the remote resource is absent.
type PlatformError struct {
	StatusCode int
	Err        error
}

func (x *PlatformError) Error() string {
	if x.StatusCode == 0 {
		return fmt.Sprintf("platform error: %v", x.Err)
	}
	return fmt.Sprintf("platform error (status %d): %v", x.StatusCode, x.Err)
}

func (x *PlatformError) Unwrap() error {
	return x.Err
}

func (x *PlatformError) Is(target error) bool {
	switch target {
	case types.ErrPlatform:
		return true
	case types.ErrNotFound:
		return x.StatusCode == http.StatusNotFound
	}
	return false
}
