package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra"
	"github.com/secmon-lab/octoclass/pkg/usecase"
)

const targetRepoID types.GitHubRepoID = 900

const (
	setupTemplate     = "---\ntitle: Setup\nlabels: [setup]\n---\nInstall the toolchain.\n"
	implementTemplate = "---\ntitle: Implement\nlabels:\n  - task\n  - graded\n---\nWrite the code.\n"
)

// setupReconcile stores an assignment with the starter repository and a provisioned target
// repository, and puts the given template files into the starter repository.
func setupReconcile(t *testing.T, files map[string]string) (*remoteState, interfaces.ClassroomRepository) {
	t.Helper()
	remote := newRemoteState()
	remote.repos[targetRepoID] = &model.GitHubRepo{ID: targetRepoID, Owner: orgLogin, Name: "hw1-alice"}
	for name, content := range files {
		remote.putFile(starterRepoID, model.IssueTemplateDir+"/"+name, content)
	}

	store := newMemoryStore()
	newIndividualAssignment(t, store, starterRepoID)
	gt.NoError(t, store.CreateProvisionedRepository(context.Background(), &model.ProvisionedRepository{
		RepoID:       targetRepoID,
		RepoName:     "hw1-alice",
		FullName:     orgLogin + "/hw1-alice",
		AssignmentID: "hw1",
		Principal:    alice(),
		Private:      true,
		CreatedAt:    time.Now(),
	}))

	return remote, store
}

func TestReconcileIssues(t *testing.T) {
	// E2E scenario A
	t.Run("create all issues in file order", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md":     setupTemplate,
			"2-implement.md": implementTemplate,
		})
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Setup", "Implement"})
		gt.A(t, result.Skipped).Length(0)
		gt.V(t, remote.issueTitles(targetRepoID)).Equal([]string{"Setup", "Implement"})

		calls := gh.CreateIssueCalls()
		gt.A(t, calls).Length(2)
		gt.V(t, calls[0].Tmpl.Labels).Equal([]string{"setup"})
		gt.V(t, calls[0].Tmpl.Body).Equal("Install the toolchain.\n")
		gt.V(t, calls[1].Tmpl.Labels).Equal([]string{"task", "graded"})
		gt.V(t, calls[0].Cred.Token).Equal(types.GitHubToken("ghp_teacher"))

		// Issues of all states are read
		gt.V(t, gh.ListIssuesCalls()[0].State).Equal(types.IssueStateAll)
	})

	// E2E scenario B
	t.Run("skip issue that already exists", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md":     setupTemplate,
			"2-implement.md": implementTemplate,
		})
		remote.issues[targetRepoID] = []*model.RemoteIssue{
			{Number: 1, Title: "Setup", State: types.IssueStateOpen},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(remote.mock()), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Implement"})
		gt.V(t, result.Skipped).Equal([]string{"Setup"})
		gt.V(t, remote.issueTitles(targetRepoID)).Equal([]string{"Setup", "Implement"})
	})

	t.Run("closed issue is not recreated", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{"1-setup.md": setupTemplate})
		remote.issues[targetRepoID] = []*model.RemoteIssue{
			{Number: 1, Title: "Setup", State: types.IssueStateClosed},
		}
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.A(t, result.Created).Length(0)
		gt.A(t, gh.CreateIssueCalls()).Length(0)
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md":     setupTemplate,
			"2-implement.md": implementTemplate,
		})
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))
		ctx := context.Background()

		_, err := uc.ReconcileIssues(ctx, targetRepoID)
		gt.NoError(t, err)
		first := remote.issueTitles(targetRepoID)
		gt.A(t, gh.CreateIssueCalls()).Length(2)

		result, err := uc.ReconcileIssues(ctx, targetRepoID)
		gt.NoError(t, err)
		gt.A(t, result.Created).Length(0)
		gt.V(t, result.Skipped).Equal([]string{"Setup", "Implement"})
		gt.A(t, gh.CreateIssueCalls()).Length(2)
		gt.V(t, remote.issueTitles(targetRepoID)).Equal(first)
	})

	t.Run("rerun after partial failure completes the rest", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md":     setupTemplate,
			"2-implement.md": implementTemplate,
		})
		gh := remote.mock()
		createFunc := gh.CreateIssueFunc
		gh.CreateIssueFunc = func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, tmpl *model.IssueTemplate) (*model.RemoteIssue, error) {
			if tmpl.Title == "Implement" {
				return nil, platformError(http.StatusBadGateway, "Server Error")
			}
			return createFunc(ctx, cred, repoID, tmpl)
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))
		ctx := context.Background()

		_, err := uc.ReconcileIssues(ctx, targetRepoID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrPlatform))
		gt.V(t, remote.issueTitles(targetRepoID)).Equal([]string{"Setup"})

		gh.CreateIssueFunc = createFunc
		result, err := uc.ReconcileIssues(ctx, targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Implement"})
		gt.V(t, remote.issueTitles(targetRepoID)).Equal([]string{"Setup", "Implement"})
	})

	t.Run("only numbered markdown files directly in the directory are templates", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md":    setupTemplate,
			"2-task.md":     "---\ntitle: Task\n---\n",
			"notes.md":      "---\ntitle: Notes\n---\n",
			"3x-bad.txt":    "---\ntitle: Bad\n---\n",
			"sub/4-deep.md": "---\ntitle: Deep\n---\n",
		})
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Setup", "Task"})

		var fetched []string
		for _, call := range gh.GetFileContentCalls() {
			fetched = append(fetched, call.Path)
		}
		gt.V(t, fetched).Equal([]string{
			model.IssueTemplateDir + "/1-setup.md",
			model.IssueTemplateDir + "/2-task.md",
		})
	})

	t.Run("discard files without title or with broken front matter", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-no-front-matter.md": "Just a body\n",
			"2-no-title.md":        "---\nlabels: [x]\n---\nbody\n",
			"3-broken.md":          "---\ntitle: [unclosed\n---\nbody\n",
			"4-valid.md":           "---\ntitle: Valid\n---\nbody\n",
		})
		uc := usecase.New(infra.New(infra.WithGitHub(remote.mock()), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Valid"})
		gt.V(t, result.Discarded).Equal([]string{
			model.IssueTemplateDir + "/1-no-front-matter.md",
			model.IssueTemplateDir + "/2-no-title.md",
			model.IssueTemplateDir + "/3-broken.md",
		})
	})

	t.Run("duplicated titles in templates create one issue", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{
			"1-setup.md": setupTemplate,
			"2-again.md": setupTemplate,
		})
		uc := usecase.New(infra.New(infra.WithGitHub(remote.mock()), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.V(t, result.Created).Equal([]string{"Setup"})
		gt.V(t, result.Skipped).Equal([]string{"Setup"})
	})

	t.Run("missing template directory is a no-op", func(t *testing.T) {
		remote, store := setupReconcile(t, nil)
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.A(t, result.Created).Length(0)
		gt.A(t, gh.ListIssuesCalls()).Length(0)
	})

	t.Run("unknown repository is a no-op", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{"1-setup.md": setupTemplate})
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		result, err := uc.ReconcileIssues(context.Background(), 12345)
		gt.NoError(t, err)
		gt.V(t, result.RepoID).Equal(types.GitHubRepoID(12345))
		gt.A(t, gh.ListFilesCalls()).Length(0)
	})

	t.Run("assignment without starter repository is a no-op", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{"1-setup.md": setupTemplate})
		newIndividualAssignment(t, store, 0)
		gh := remote.mock()
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		_, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.NoError(t, err)
		gt.A(t, gh.ListFilesCalls()).Length(0)
	})

	t.Run("listing issues failure propagates", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{"1-setup.md": setupTemplate})
		gh := remote.mock()
		gh.ListIssuesFunc = func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, state types.IssueState) ([]*model.RemoteIssue, error) {
			return nil, platformError(http.StatusForbidden, "Forbidden")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		_, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.True(t, errors.Is(err, types.ErrPlatform))
		gt.A(t, gh.CreateIssueCalls()).Length(0)
	})

	t.Run("listing files failure other than not found propagates", func(t *testing.T) {
		remote, store := setupReconcile(t, map[string]string{"1-setup.md": setupTemplate})
		gh := remote.mock()
		gh.ListFilesFunc = func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, path string) ([]*model.RepoFile, error) {
			return nil, platformError(http.StatusInternalServerError, "Server Error")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithClassroomRepository(store)))

		_, err := uc.ReconcileIssues(context.Background(), targetRepoID)
		gt.True(t, errors.Is(err, types.ErrPlatform))
		gt.False(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestLoadIssueTemplates(t *testing.T) {
	remote := newRemoteState()
	remote.putFile(starterRepoID, model.IssueTemplateDir+"/1-setup.md", setupTemplate)
	remote.putFile(starterRepoID, model.IssueTemplateDir+"/2-empty.md", "---\ntitle: \"\"\n---\n")
	gh := remote.mock()
	result := &model.ReconcileResult{}

	templates, err := usecase.LoadIssueTemplatesForTest(context.Background(), gh, &model.Credential{Token: "t"}, starterRepoID, result)
	gt.NoError(t, err)
	gt.A(t, templates).Length(1)
	gt.V(t, templates[0].Title).Equal("Setup")
	gt.V(t, result.Discarded).Equal([]string{model.IssueTemplateDir + "/2-empty.md"})
}
