package memory

import (
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

// New creates a new in-memory classroom repository
func New() interfaces.ClassroomRepository {
	return &classroomRepository{
		assignments: make(map[types.AssignmentID]*assignmentData),
		repos:       make(map[types.GitHubRepoID]*model.ProvisionedRepository),
	}
}

// NewJobQueue creates a new in-memory reconciliation job queue
func NewJobQueue() interfaces.JobQueue {
	return &jobQueue{}
}
