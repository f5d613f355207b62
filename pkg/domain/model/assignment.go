package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

// Organization is a GitHub organization that owns classroom repositories
type Organization struct {
	Login     string
	GitHubID  types.GitHubOrgID
	InstallID types.GitHubAppInstallID
}

// Credential returns the credential of the provisioning actor. It is used for repository and
// collaborator operations.
func (x Organization) Credential() *Credential {
	return &Credential{InstallID: x.InstallID}
}

// Actor is a GitHub user acting on octoclass, e.g. the creator of an assignment
type Actor struct {
	Login string
	Token types.GitHubToken `masq:"secret"`
}

// Principal is the accepting actor of an assignment: a user or a team (group)
type Principal struct {
	Kind     types.PrincipalKind `json:"kind"`
	Login    string              `json:"login,omitempty"`
	TeamID   types.GitHubTeamID  `json:"team_id,omitempty"`
	TeamSlug string              `json:"team_slug,omitempty"`
}

func (x Principal) Name() string {
	if x.Kind == types.PrincipalKindTeam {
		return x.TeamSlug
	}
	return x.Login
}

func (x Principal) Validate() error {
	switch x.Kind {
	case types.PrincipalKindUser:
		if x.Login == "" {
			return goerr.Wrap(types.ErrValidationFailed, "user principal requires login")
		}
	case types.PrincipalKindTeam:
		if x.TeamID == 0 || x.TeamSlug == "" {
			return goerr.Wrap(types.ErrValidationFailed, "team principal requires team ID and slug",
				goerr.V("team_id", x.TeamID),
				goerr.V("team_slug", x.TeamSlug),
			)
		}
	default:
		return goerr.Wrap(types.ErrValidationFailed, "unknown principal kind", goerr.V("kind", x.Kind))
	}
	return nil
}

// AssignmentMeta holds attributes shared by individual and group assignments
type AssignmentMeta struct {
	ID            types.AssignmentID
	Title         string
	Slug          string
	Organization  Organization
	Creator       Actor
	StarterRepoID types.GitHubRepoID
	PublicRepo    bool
	CreatedAt     time.Time
}

// HasStarterRepo returns true if a starter template repository is configured
func (x *AssignmentMeta) HasStarterRepo() bool {
	return x.StarterRepoID != 0
}

// CreatorCredential returns the credential of the assignment creator, used for starter code and
// issue operations. Without a personal token the organization's installation acts on the
// creator's behalf.
func (x *AssignmentMeta) CreatorCredential() *Credential {
	if x.Creator.Token != "" {
		return &Credential{Token: x.Creator.Token}
	}
	return x.Organization.Credential()
}

func (x *AssignmentMeta) validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "assignment ID is empty")
	}
	if x.Slug == "" {
		return goerr.Wrap(types.ErrValidationFailed, "assignment slug is empty", goerr.V("id", x.ID))
	}
	if x.Organization.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "organization login is empty", goerr.V("id", x.ID))
	}
	return nil
}

// Assignment is the capability shared by individual and group assignments: it owns issue
// specs, owns a slug and has a creator.
type Assignment interface {
	Meta() *AssignmentMeta
	Kind() types.AssignmentKind
	ValidatePrincipal(p Principal) error
	Validate() error
}

// IndividualAssignment is accepted by a single GitHub user
type IndividualAssignment struct {
	AssignmentMeta
}

var _ Assignment = (*IndividualAssignment)(nil)

func (x *IndividualAssignment) Meta() *AssignmentMeta     { return &x.AssignmentMeta }
func (x *IndividualAssignment) Kind() types.AssignmentKind { return types.AssignmentKindIndividual }
func (x *IndividualAssignment) Validate() error            { return x.validate() }

func (x *IndividualAssignment) ValidatePrincipal(p Principal) error {
	if p.Kind != types.PrincipalKindUser {
		return goerr.Wrap(types.ErrValidationFailed, "individual assignment must be accepted by a user",
			goerr.V("assignment_id", x.ID),
			goerr.V("principal_kind", p.Kind),
		)
	}
	return p.Validate()
}

// GroupAssignment is accepted by a group, represented by a GitHub team
type GroupAssignment struct {
	AssignmentMeta
	MaxMembers int
}

var _ Assignment = (*GroupAssignment)(nil)

func (x *GroupAssignment) Meta() *AssignmentMeta     { return &x.AssignmentMeta }
func (x *GroupAssignment) Kind() types.AssignmentKind { return types.AssignmentKindGroup }

func (x *GroupAssignment) Validate() error {
	if err := x.validate(); err != nil {
		return err
	}
	if x.MaxMembers < 0 {
		return goerr.Wrap(types.ErrValidationFailed, "max members must not be negative", goerr.V("id", x.ID))
	}
	return nil
}

func (x *GroupAssignment) ValidatePrincipal(p Principal) error {
	if p.Kind != types.PrincipalKindTeam {
		return goerr.Wrap(types.ErrValidationFailed, "group assignment must be accepted by a team",
			goerr.V("assignment_id", x.ID),
			goerr.V("principal_kind", p.Kind),
		)
	}
	return p.Validate()
}

// AssignmentRecord is the flat persisted shape of an Assignment
type AssignmentRecord struct {
	AssignmentMeta
	Kind       types.AssignmentKind
	MaxMembers int
}

// NewAssignmentRecord flattens an assignment for storage
func NewAssignmentRecord(a Assignment) *AssignmentRecord {
	rec := &AssignmentRecord{
		AssignmentMeta: *a.Meta(),
		Kind:           a.Kind(),
	}
	if g, ok := a.(*GroupAssignment); ok {
		rec.MaxMembers = g.MaxMembers
	}
	return rec
}

// Assignment restores the variant of the record
func (x *AssignmentRecord) Assignment() (Assignment, error) {
	switch x.Kind {
	case types.AssignmentKindIndividual:
		return &IndividualAssignment{AssignmentMeta: x.AssignmentMeta}, nil
	case types.AssignmentKindGroup:
		return &GroupAssignment{AssignmentMeta: x.AssignmentMeta, MaxMembers: x.MaxMembers}, nil
	default:
		return nil, goerr.Wrap(types.ErrValidationFailed, "unknown assignment kind",
			goerr.V("id", x.ID),
			goerr.V("kind", x.Kind),
		)
	}
}

// IssueSpec is an issue defined locally on an assignment, opened on every provisioned repository
type IssueSpec struct {
	AssignmentID types.AssignmentID
	Title        string
	Body         string
	Position     int
}

func (x *IssueSpec) Validate() error {
	if x.AssignmentID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "issue spec has no assignment")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "issue spec title is empty",
			goerr.V("assignment_id", x.AssignmentID),
		)
	}
	return nil
}

// SortIssueSpecs sorts specs by ascending position, keeping insertion order on ties
func SortIssueSpecs(specs []*IssueSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Position < specs[j].Position
	})
}
