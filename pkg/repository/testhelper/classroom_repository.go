package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
)

// TestAll runs all test cases for ClassroomRepository
// This is the main entry point for testing any ClassroomRepository implementation
func TestAll(t *testing.T, repo interfaces.ClassroomRepository) {
	t.Run("AssignmentCRUD", func(t *testing.T) {
		TestAssignmentCRUD(t, repo)
	})
	t.Run("GroupAssignment", func(t *testing.T) {
		TestGroupAssignment(t, repo)
	})
	t.Run("IssueSpecOrder", func(t *testing.T) {
		TestIssueSpecOrder(t, repo)
	})
	t.Run("ProvisionedRepositoryCRUD", func(t *testing.T) {
		TestProvisionedRepositoryCRUD(t, repo)
	})
	t.Run("RefuseUnprovisioned", func(t *testing.T) {
		TestRefuseUnprovisioned(t, repo)
	})
}

// NewRepoID returns a random repository ID so that tests can share a database
func NewRepoID() types.GitHubRepoID {
	return types.GitHubRepoID(rand.Int64N(1<<40) + 1)
}

func newAssignmentMeta() model.AssignmentMeta {
	suffix := uuid.New().String()[:8]
	return model.AssignmentMeta{
		ID:    types.AssignmentID("assignment-" + suffix),
		Title: "Homework " + suffix,
		Slug:  "hw-" + suffix,
		Organization: model.Organization{
			Login:     "classroom-org",
			GitHubID:  1001,
			InstallID: 2002,
		},
		Creator: model.Actor{
			Login: "teacher",
			Token: "ghp_test_token",
		},
		StarterRepoID: 3003,
		PublicRepo:    false,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

// TestAssignmentCRUD tests put and get of an individual assignment
func TestAssignmentCRUD(t *testing.T, repo interfaces.ClassroomRepository) {
	ctx := context.Background()

	assignment := &model.IndividualAssignment{AssignmentMeta: newAssignmentMeta()}
	gt.NoError(t, repo.PutAssignment(ctx, assignment))

	got, err := repo.GetAssignment(ctx, assignment.ID)
	gt.NoError(t, err)
	gt.V(t, got.Kind()).Equal(types.AssignmentKindIndividual)
	gt.V(t, got.Meta().Slug).Equal(assignment.Slug)
	gt.V(t, got.Meta().Organization).Equal(assignment.Organization)
	gt.V(t, got.Meta().Creator).Equal(assignment.Creator)
	gt.V(t, got.Meta().StarterRepoID).Equal(assignment.StarterRepoID)
	gt.True(t, got.Meta().CreatedAt.Equal(assignment.CreatedAt))

	// Update
	assignment.Title = "Updated"
	assignment.PublicRepo = true
	gt.NoError(t, repo.PutAssignment(ctx, assignment))

	got, err = repo.GetAssignment(ctx, assignment.ID)
	gt.NoError(t, err)
	gt.V(t, got.Meta().Title).Equal("Updated")
	gt.True(t, got.Meta().PublicRepo)

	// Not found
	_, err = repo.GetAssignment(ctx, types.AssignmentID("missing-"+uuid.New().String()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Invalid
	invalid := &model.IndividualAssignment{AssignmentMeta: newAssignmentMeta()}
	invalid.Slug = ""
	err = repo.PutAssignment(ctx, invalid)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

// TestGroupAssignment tests that the group variant survives a round trip
func TestGroupAssignment(t *testing.T, repo interfaces.ClassroomRepository) {
	ctx := context.Background()

	assignment := &model.GroupAssignment{AssignmentMeta: newAssignmentMeta(), MaxMembers: 4}
	gt.NoError(t, repo.PutAssignment(ctx, assignment))

	got, err := repo.GetAssignment(ctx, assignment.ID)
	gt.NoError(t, err)
	gt.V(t, got.Kind()).Equal(types.AssignmentKindGroup)

	group, ok := got.(*model.GroupAssignment)
	gt.True(t, ok)
	gt.V(t, group.MaxMembers).Equal(4)

	gt.NoError(t, got.ValidatePrincipal(model.Principal{Kind: types.PrincipalKindTeam, TeamID: 7, TeamSlug: "team-a"}))
	gt.Error(t, got.ValidatePrincipal(model.Principal{Kind: types.PrincipalKindUser, Login: "alice"}))
}

// TestIssueSpecOrder tests that issue specs are listed by position and appended without one
func TestIssueSpecOrder(t *testing.T, repo interfaces.ClassroomRepository) {
	ctx := context.Background()

	assignment := &model.IndividualAssignment{AssignmentMeta: newAssignmentMeta()}
	gt.NoError(t, repo.PutAssignment(ctx, assignment))

	specs := []*model.IssueSpec{
		{AssignmentID: assignment.ID, Title: "Second", Position: 2},
		{AssignmentID: assignment.ID, Title: "First", Position: 1},
		{AssignmentID: assignment.ID, Title: "Third"},
	}
	for _, spec := range specs {
		gt.NoError(t, repo.AddIssueSpec(ctx, spec))
	}
	// The caller's spec is left as given
	gt.V(t, specs[2].Position).Equal(0)

	listed, err := repo.ListIssueSpecs(ctx, assignment.ID)
	gt.NoError(t, err)
	gt.A(t, listed).Length(3)
	gt.V(t, listed[0].Title).Equal("First")
	gt.V(t, listed[1].Title).Equal("Second")
	gt.V(t, listed[2].Title).Equal("Third")
	gt.V(t, listed[2].Position).Equal(3)

	// Missing title
	err = repo.AddIssueSpec(ctx, &model.IssueSpec{AssignmentID: assignment.ID})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	// Unknown assignment
	err = repo.AddIssueSpec(ctx, &model.IssueSpec{
		AssignmentID: types.AssignmentID("missing-" + uuid.New().String()),
		Title:        "Orphan",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// No specs
	empty, err := repo.ListIssueSpecs(ctx, types.AssignmentID("missing-"+uuid.New().String()))
	gt.NoError(t, err)
	gt.A(t, empty).Length(0)
}

// TestProvisionedRepositoryCRUD tests create, get, list and delete of provisioned repositories
func TestProvisionedRepositoryCRUD(t *testing.T, repo interfaces.ClassroomRepository) {
	ctx := context.Background()
	assignmentID := types.AssignmentID("assignment-" + uuid.New().String()[:8])

	var created []*model.ProvisionedRepository
	for i := range 2 {
		login := fmt.Sprintf("student-%d", i)
		record := &model.ProvisionedRepository{
			RepoID:       NewRepoID(),
			RepoName:     "hw-" + login,
			FullName:     "classroom-org/hw-" + login,
			AssignmentID: assignmentID,
			Principal:    model.Principal{Kind: types.PrincipalKindUser, Login: login},
			Private:      true,
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		}
		gt.NoError(t, repo.CreateProvisionedRepository(ctx, record))
		created = append(created, record)
	}

	got, err := repo.GetProvisionedRepository(ctx, created[0].RepoID)
	gt.NoError(t, err)
	gt.V(t, got.RepoName).Equal(created[0].RepoName)
	gt.V(t, got.FullName).Equal(created[0].FullName)
	gt.V(t, got.AssignmentID).Equal(assignmentID)
	gt.V(t, got.Principal).Equal(created[0].Principal)
	gt.True(t, got.Private)
	gt.True(t, got.CreatedAt.Equal(created[0].CreatedAt))

	// RepoID is unique
	err = repo.CreateProvisionedRepository(ctx, created[0])
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	listed, err := repo.ListProvisionedRepositories(ctx, assignmentID)
	gt.NoError(t, err)
	gt.A(t, listed).Length(2)

	gt.NoError(t, repo.DeleteProvisionedRepository(ctx, created[0].RepoID))

	_, err = repo.GetProvisionedRepository(ctx, created[0].RepoID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.DeleteProvisionedRepository(ctx, created[0].RepoID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	listed, err = repo.ListProvisionedRepositories(ctx, assignmentID)
	gt.NoError(t, err)
	gt.A(t, listed).Length(1)
	gt.V(t, listed[0].RepoID).Equal(created[1].RepoID)
}

// TestRefuseUnprovisioned tests that a record without a remote repository is never stored
func TestRefuseUnprovisioned(t *testing.T, repo interfaces.ClassroomRepository) {
	ctx := context.Background()

	err := repo.CreateProvisionedRepository(ctx, &model.ProvisionedRepository{
		AssignmentID: types.AssignmentID("assignment-" + uuid.New().String()[:8]),
		Principal:    model.Principal{Kind: types.PrincipalKindUser, Login: "alice"},
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
