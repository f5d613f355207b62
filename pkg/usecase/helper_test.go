package usecase_test

import (
	"context"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/mock"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository/memory"
)

const (
	starterRepoID types.GitHubRepoID = 500
	orgLogin                         = "classroom-org"
)

// remoteState is an in-memory GitHub behind mock.GitHubMock
type remoteState struct {
	mu     sync.Mutex
	nextID types.GitHubRepoID
	repos  map[types.GitHubRepoID]*model.GitHubRepo
	files  map[types.GitHubRepoID]map[string]string
	issues map[types.GitHubRepoID][]*model.RemoteIssue
	collab map[types.GitHubRepoID][]string
	teams  map[types.GitHubRepoID][]types.GitHubTeamID
}

func platformError(status int, msg string) error {
	return goerr.Wrap(&model.PlatformError{StatusCode: status, Err: goerr.New(msg)}, msg)
}

func newRemoteState() *remoteState {
	return &remoteState{
		nextID: 1000,
		repos: map[types.GitHubRepoID]*model.GitHubRepo{
			starterRepoID: {ID: starterRepoID, Owner: orgLogin, Name: "starter"},
		},
		files:  map[types.GitHubRepoID]map[string]string{},
		issues: map[types.GitHubRepoID][]*model.RemoteIssue{},
		collab: map[types.GitHubRepoID][]string{},
		teams:  map[types.GitHubRepoID][]types.GitHubTeamID{},
	}
}

func (x *remoteState) exists(id types.GitHubRepoID) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, ok := x.repos[id]
	return ok
}

func (x *remoteState) issueTitles(id types.GitHubRepoID) []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	var titles []string
	for _, issue := range x.issues[id] {
		titles = append(titles, issue.Title)
	}
	return titles
}

func (x *remoteState) putFile(id types.GitHubRepoID, p, content string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.files[id] == nil {
		x.files[id] = map[string]string{}
	}
	x.files[id][p] = content
}

// mock returns a GitHubMock whose calls read and write the state
func (x *remoteState) mock() *mock.GitHubMock {
	return &mock.GitHubMock{
		CreateRepositoryFunc: func(ctx context.Context, cred *model.Credential, input *model.CreateRepositoryInput) (*model.GitHubRepo, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			for _, repo := range x.repos {
				if repo.Owner == input.Owner && repo.Name == input.Name {
					return nil, platformError(http.StatusUnprocessableEntity, "name already exists on this account")
				}
			}
			x.nextID++
			repo := &model.GitHubRepo{ID: x.nextID, Owner: input.Owner, Name: input.Name, Private: input.Private}
			x.repos[repo.ID] = repo
			return repo, nil
		},
		DeleteRepositoryFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			if _, ok := x.repos[repoID]; !ok {
				return platformError(http.StatusNotFound, "Not Found")
			}
			delete(x.repos, repoID)
			delete(x.issues, repoID)
			return nil
		},
		AddCollaboratorFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, login string) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			x.collab[repoID] = append(x.collab[repoID], login)
			return nil
		},
		AddTeamRepositoryFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, orgID types.GitHubOrgID, teamID types.GitHubTeamID) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			x.teams[repoID] = append(x.teams[repoID], teamID)
			return nil
		},
		CopyContentsFunc: func(ctx context.Context, cred *model.Credential, from, to types.GitHubRepoID) error {
			return nil
		},
		ListFilesFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, dir string) ([]*model.RepoFile, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			var files []*model.RepoFile
			for p := range x.files[repoID] {
				if path.Dir(p) == dir {
					files = append(files, &model.RepoFile{Path: p, Type: types.RepoFileTypeFile})
				} else if strings.HasPrefix(p, dir+"/") {
					sub := dir + "/" + strings.SplitN(strings.TrimPrefix(p, dir+"/"), "/", 2)[0]
					files = append(files, &model.RepoFile{Path: sub, Type: types.RepoFileTypeDir})
				}
			}
			if len(files) == 0 {
				return nil, platformError(http.StatusNotFound, "Not Found")
			}
			sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
			return files, nil
		},
		GetFileContentFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, p string) ([]byte, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			content, ok := x.files[repoID][p]
			if !ok {
				return nil, platformError(http.StatusNotFound, "Not Found")
			}
			return []byte(content), nil
		},
		ListIssuesFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, state types.IssueState) ([]*model.RemoteIssue, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			var issues []*model.RemoteIssue
			for _, issue := range x.issues[repoID] {
				if state == types.IssueStateAll || issue.State == state {
					copied := *issue
					issues = append(issues, &copied)
				}
			}
			return issues, nil
		},
		CreateIssueFunc: func(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, tmpl *model.IssueTemplate) (*model.RemoteIssue, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			if _, ok := x.repos[repoID]; !ok {
				return nil, platformError(http.StatusNotFound, "Not Found")
			}
			issue := &model.RemoteIssue{
				Number: len(x.issues[repoID]) + 1,
				Title:  tmpl.Title,
				Body:   tmpl.Body,
				Labels: tmpl.Labels,
				State:  types.IssueStateOpen,
			}
			x.issues[repoID] = append(x.issues[repoID], issue)
			return issue, nil
		},
	}
}

func newIndividualAssignment(t *testing.T, store interfaces.ClassroomRepository, starter types.GitHubRepoID, specs ...string) *model.IndividualAssignment {
	t.Helper()
	assignment := &model.IndividualAssignment{
		AssignmentMeta: model.AssignmentMeta{
			ID:    "hw1",
			Title: "Homework 1",
			Slug:  "hw1",
			Organization: model.Organization{
				Login:     orgLogin,
				GitHubID:  10,
				InstallID: 20,
			},
			Creator:       model.Actor{Login: "teacher", Token: "ghp_teacher"},
			StarterRepoID: starter,
			CreatedAt:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	gt.NoError(t, store.PutAssignment(context.Background(), assignment))

	for _, title := range specs {
		gt.NoError(t, store.AddIssueSpec(context.Background(), &model.IssueSpec{
			AssignmentID: assignment.ID,
			Title:        title,
			Body:         title + " body",
		}))
	}
	return assignment
}

func newMemoryStore() interfaces.ClassroomRepository {
	return memory.New()
}
