package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

// ProvisionedRepository is a local record of a remote repository created for one assignment
// and one accepting principal. RepoID == 0 means the repository is not provisioned.
type ProvisionedRepository struct {
	RepoID       types.GitHubRepoID `json:"repo_id"`
	RepoName     string             `json:"repo_name"`
	FullName     string             `json:"full_name"`
	AssignmentID types.AssignmentID `json:"assignment_id"`
	Principal    Principal          `json:"principal"`
	Private      bool               `json:"private"`
	CreatedAt    time.Time          `json:"created_at"`
}

func (x *ProvisionedRepository) Provisioned() bool {
	return x != nil && x.RepoID != 0
}

func (x *ProvisionedRepository) Validate() error {
	if !x.Provisioned() {
		return goerr.Wrap(types.ErrValidationFailed, "repository is not provisioned")
	}
	if x.AssignmentID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "provisioned repository has no assignment",
			goerr.V("repo_id", x.RepoID))
	}
	return nil
}

type ProvisionRepositoryInput struct {
	AssignmentID types.AssignmentID
	Principal    Principal
}

func (x *ProvisionRepositoryInput) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrValidationFailed, "input is nil")
	}
	if x.AssignmentID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "assignment ID is empty")
	}
	return x.Principal.Validate()
}

// CreateRepositoryInput is a request to create a remote repository under an organization
type CreateRepositoryInput struct {
	Owner       string
	Name        string
	Private     bool
	Description string
}

const maxRepoNameLength = 100

// RepoName derives the repository name "<slug>-<principal name>". Characters GitHub does not
// accept are replaced with '-'.
func RepoName(slug string, p Principal) string {
	raw := slug + "-" + p.Name()

	var b strings.Builder
	for _, c := range raw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteRune('-')
		}
	}

	name := b.String()
	if len(name) > maxRepoNameLength {
		name = name[:maxRepoNameLength]
	}
	return name
}

// RepoDescription is the description text of a provisioned repository
func RepoDescription(repoName string) string {
	return repoName + " created by octoclass"
}

// ProvisioningError is returned by the provisioning saga when a step after repository creation
// failed. It always wraps the original cause. CompensationErr is set when deleting the created
// repository failed as well.
type ProvisioningError struct {
	State           types.SagaState
	RepoID          types.GitHubRepoID
	Cause           error
	CompensationErr error
}

func (x *ProvisioningError) Error() string {
	msg := fmt.Sprintf("provisioning failed (state=%s, repo_id=%d): %v", x.State, x.RepoID, x.Cause)
	if x.CompensationErr != nil {
		msg += fmt.Sprintf(" (compensation failed: %v)", x.CompensationErr)
	}
	return msg
}

func (x *ProvisioningError) Unwrap() error {
	return x.Cause
}

func (x *ProvisioningError) Is(target error) bool {
	return target == types.ErrProvisioning
}

// ProvisionLog is an audit record of one provisioning saga run
type ProvisionLog struct {
	ID            types.AuditID      `bigquery:"id" json:"id"`
	Timestamp     time.Time          `bigquery:"timestamp" json:"timestamp"`
	AssignmentID  types.AssignmentID `bigquery:"assignment_id" json:"assignment_id"`
	RepoID        int64              `bigquery:"repo_id" json:"repo_id"`
	RepoName      string             `bigquery:"repo_name" json:"repo_name"`
	PrincipalKind string             `bigquery:"principal_kind" json:"principal_kind"`
	Principal     string             `bigquery:"principal" json:"principal"`
	FinalState    types.SagaState    `bigquery:"final_state" json:"final_state"`
	Error         string             `bigquery:"error" json:"error"`
}

// ProvisionLogRecord is the row form of ProvisionLog for the BigQuery Storage Write API,
// which takes timestamps as microseconds.
type ProvisionLogRecord struct {
	ProvisionLog
	Timestamp int64 `json:"timestamp"`
}

func NewProvisionLogRecord(log *ProvisionLog) *ProvisionLogRecord {
	return &ProvisionLogRecord{
		ProvisionLog: *log,
		Timestamp:    log.Timestamp.UnixMicro(),
	}
}
