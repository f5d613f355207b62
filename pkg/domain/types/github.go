package types

import (
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubRepoID        int64
	GitHubOrgID         int64
	GitHubTeamID        int64
)

func (x GitHubRepoID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// ParseGitHubRepoID parses decimal repository ID given via URL path or CLI flag.
func ParseGitHubRepoID(s string) (GitHubRepoID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, goerr.Wrap(ErrValidationFailed, "invalid repository ID", goerr.V("value", s))
	}
	return GitHubRepoID(v), nil
}

// IssueState is a state filter of GitHub issue listing
type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
	IssueStateAll    IssueState = "all"
)

// RepoFileType is "type" field of GitHub contents API
type RepoFileType string

const (
	RepoFileTypeFile      RepoFileType = "file"
	RepoFileTypeDir       RepoFileType = "dir"
	RepoFileTypeSymlink   RepoFileType = "symlink"
	RepoFileTypeSubmodule RepoFileType = "submodule"
)

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
