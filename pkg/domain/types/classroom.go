package types

import (
	"github.com/google/uuid"
)

type (
	AssignmentID string
	RequestID    string
	JobID        string
	AuditID      string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewJobID() JobID {
	return JobID(uuid.NewString())
}

func NewAuditID() AuditID {
	return AuditID(uuid.NewString())
}

func (x AssignmentID) String() string { return string(x) }

// AssignmentKind distinguishes individual and group assignments
type AssignmentKind string

const (
	AssignmentKindIndividual AssignmentKind = "individual"
	AssignmentKindGroup      AssignmentKind = "group"
)

// PrincipalKind is a kind of actor that accepts an assignment
type PrincipalKind string

const (
	PrincipalKindUser PrincipalKind = "user"
	PrincipalKindTeam PrincipalKind = "team"
)

// SagaState is a progress state of a provisioning saga
type SagaState string

const (
	SagaStatePending           SagaState = "pending"
	SagaStateRepoCreated       SagaState = "repo_created"
	SagaStateCodePushed        SagaState = "code_pushed"
	SagaStateCollaboratorAdded SagaState = "collaborator_added"
	SagaStateIssuesOpened      SagaState = "issues_opened"
	SagaStateRolledBack        SagaState = "rolled_back"
	SagaStateFailed            SagaState = "failed"
)

// Terminal returns true if no further transition is possible.
func (x SagaState) Terminal() bool {
	switch x {
	case SagaStateIssuesOpened, SagaStateRolledBack, SagaStateFailed:
		return true
	}
	return false
}

// JobState is a state of a queued reconciliation job
type JobState string

const (
	JobStateReady      JobState = "ready"
	JobStateInProgress JobState = "in_progress"
	JobStateCompleted  JobState = "completed"
	JobStateFailed     JobState = "failed"
	JobStateDead       JobState = "dead"
)
