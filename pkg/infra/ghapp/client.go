package ghapp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v53/github"
	"github.com/gregjones/httpcache"
	lru "github.com/hashicorp/golang-lru"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

const (
	defaultCacheSize = 256

	// username of HTTP basic auth with an installation or personal access token
	tokenUsername = "x-access-token"
)

type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	baseURL   *url.URL
	transport http.RoundTripper

	// credential key -> *apiClient
	clients *lru.Cache
	// types.GitHubRepoID -> *model.GitHubRepo
	repos *lru.Cache
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces GitHub API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.baseURL = u
	}
}

// WithTransport replaces the underlying HTTP transport
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	clients, err := lru.New(defaultCacheSize)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create client cache")
	}
	repos, err := lru.New(defaultCacheSize)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository cache")
	}

	client := &Client{
		appID:     appID,
		pem:       pem,
		transport: http.DefaultTransport,
		clients:   clients,
		repos:     repos,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// apiClient is a go-github client bound to one credential
type apiClient struct {
	gh    *github.Client
	token func(ctx context.Context) (string, error)
}

func credentialKey(cred *model.Credential) string {
	if cred.Token != "" {
		sum := sha256.Sum256([]byte(cred.Token))
		return "token:" + hex.EncodeToString(sum[:])
	}
	return "install:" + strconv.FormatInt(int64(cred.InstallID), 10)
}

// revalidate turns every GET into a conditional request against the ETag cache. GitHub
// answers 304 without consuming rate limit, and reads never miss a preceding write.
type revalidate struct {
	next http.RoundTripper
}

func (x *revalidate) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodGet && req.Header.Get("Cache-Control") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Cache-Control", "max-age=0")
	}
	return x.next.RoundTrip(req)
}

// client returns a go-github client for the credential. The transport stack is
// rate limit handler -> authentication -> revalidate -> ETag cache -> base transport. The cache is not
// shared between credentials.
func (x *Client) client(cred *model.Credential) (*apiClient, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}

	key := credentialKey(cred)
	if v, ok := x.clients.Get(key); ok {
		return v.(*apiClient), nil
	}

	cache := httpcache.NewMemoryCacheTransport()
	cache.Transport = x.transport
	conditional := &revalidate{next: cache}

	c := &apiClient{}
	var auth http.RoundTripper
	if cred.Token != "" {
		token := string(cred.Token)
		auth = &github.BasicAuthTransport{
			Username:  tokenUsername,
			Password:  token,
			Transport: conditional,
		}
		c.token = func(context.Context) (string, error) { return token, nil }
	} else {
		itr, err := ghinstallation.New(conditional, int64(x.appID), int64(cred.InstallID), []byte(x.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create installation transport",
				goerr.V("install_id", cred.InstallID),
			)
		}
		if x.baseURL != nil {
			itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
		}
		auth = itr
		c.token = itr.Token
	}

	c.gh = github.NewClient(github_ratelimit.NewClient(auth))
	if x.baseURL != nil {
		c.gh.BaseURL = x.baseURL
	}

	x.clients.Add(key, c)
	return c, nil
}

func platformError(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	var status int
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	options = append(options, goerr.V("status", status))
	return goerr.Wrap(&model.PlatformError{StatusCode: status, Err: err}, msg, options...)
}

func toGitHubRepo(repo *github.Repository) *model.GitHubRepo {
	return &model.GitHubRepo{
		ID:      types.GitHubRepoID(repo.GetID()),
		Owner:   repo.GetOwner().GetLogin(),
		Name:    repo.GetName(),
		HTMLURL: repo.GetHTMLURL(),
		Private: repo.GetPrivate(),
	}
}

// lookupRepo resolves repository ID to owner and name. Results are cached because the
// mapping never changes while the repository exists.
func (x *Client) lookupRepo(ctx context.Context, c *apiClient, repoID types.GitHubRepoID) (*model.GitHubRepo, error) {
	if v, ok := x.repos.Get(repoID); ok {
		return v.(*model.GitHubRepo), nil
	}

	repo, resp, err := c.gh.Repositories.GetByID(ctx, int64(repoID))
	if err != nil {
		return nil, platformError(err, resp, "failed to get repository", goerr.V("repo_id", repoID))
	}

	result := toGitHubRepo(repo)
	x.repos.Add(repoID, result)
	return result, nil
}

func (x *Client) CreateRepository(ctx context.Context, cred *model.Credential, input *model.CreateRepositoryInput) (*model.GitHubRepo, error) {
	c, err := x.client(cred)
	if err != nil {
		return nil, err
	}

	req := &github.Repository{
		Name:        github.String(input.Name),
		Private:     github.Bool(input.Private),
		Description: github.String(input.Description),
	}

	repo, resp, err := c.gh.Repositories.Create(ctx, input.Owner, req)
	if err != nil {
		return nil, platformError(err, resp, "failed to create repository",
			goerr.V("owner", input.Owner),
			goerr.V("name", input.Name),
		)
	}

	result := toGitHubRepo(repo)
	x.repos.Add(result.ID, result)

	logging.From(ctx).Info("Created repository",
		slog.Any("repo_id", result.ID),
		slog.String("full_name", result.FullName()),
	)
	return result, nil
}

func (x *Client) DeleteRepository(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID) error {
	c, err := x.client(cred)
	if err != nil {
		return err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return err
	}

	resp, err := c.gh.Repositories.Delete(ctx, repo.Owner, repo.Name)
	x.repos.Remove(repoID)
	if err != nil {
		return platformError(err, resp, "failed to delete repository",
			goerr.V("repo_id", repoID),
			goerr.V("full_name", repo.FullName()),
		)
	}

	logging.From(ctx).Info("Deleted repository",
		slog.Any("repo_id", repoID),
		slog.String("full_name", repo.FullName()),
	)
	return nil
}

func (x *Client) AddCollaborator(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, login string) error {
	c, err := x.client(cred)
	if err != nil {
		return err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return err
	}

	opts := &github.RepositoryAddCollaboratorOptions{Permission: "push"}
	if _, resp, err := c.gh.Repositories.AddCollaborator(ctx, repo.Owner, repo.Name, login, opts); err != nil {
		return platformError(err, resp, "failed to add collaborator",
			goerr.V("full_name", repo.FullName()),
			goerr.V("login", login),
		)
	}

	return nil
}

func (x *Client) AddTeamRepository(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, orgID types.GitHubOrgID, teamID types.GitHubTeamID) error {
	c, err := x.client(cred)
	if err != nil {
		return err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return err
	}

	opts := &github.TeamAddTeamRepoOptions{Permission: "push"}
	if resp, err := c.gh.Teams.AddTeamRepoByID(ctx, int64(orgID), int64(teamID), repo.Owner, repo.Name, opts); err != nil {
		return platformError(err, resp, "failed to add team to repository",
			goerr.V("full_name", repo.FullName()),
			goerr.V("team_id", teamID),
		)
	}

	return nil
}

// CopyContents starts a source import of from into to. GitHub runs the import
// asynchronously; the call returns once the import is accepted.
func (x *Client) CopyContents(ctx context.Context, cred *model.Credential, from, to types.GitHubRepoID) error {
	c, err := x.client(cred)
	if err != nil {
		return err
	}

	src, err := x.lookupRepo(ctx, c, from)
	if err != nil {
		return err
	}
	dst, err := x.lookupRepo(ctx, c, to)
	if err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get access token for source import")
	}

	imp := &github.Import{
		VCS:         github.String("git"),
		VCSURL:      github.String(src.HTMLURL + ".git"),
		VCSUsername: github.String(tokenUsername),
		VCSPassword: github.String(token),
	}
	if _, resp, err := c.gh.Migrations.StartImport(ctx, dst.Owner, dst.Name, imp); err != nil {
		return platformError(err, resp, "failed to start source import",
			goerr.V("from", src.FullName()),
			goerr.V("to", dst.FullName()),
		)
	}

	logging.From(ctx).Info("Started source import",
		slog.String("from", src.FullName()),
		slog.String("to", dst.FullName()),
	)
	return nil
}

func (x *Client) ListFiles(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, path string) ([]*model.RepoFile, error) {
	c, err := x.client(cred)
	if err != nil {
		return nil, err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return nil, err
	}

	file, dir, resp, err := c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		return nil, platformError(err, resp, "failed to list files",
			goerr.V("full_name", repo.FullName()),
			goerr.V("path", path),
		)
	}

	entries := dir
	if file != nil {
		entries = []*github.RepositoryContent{file}
	}

	files := make([]*model.RepoFile, 0, len(entries))
	for _, entry := range entries {
		files = append(files, &model.RepoFile{
			Path: entry.GetPath(),
			Type: types.RepoFileType(entry.GetType()),
		})
	}

	return files, nil
}

func (x *Client) GetFileContent(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, path string) ([]byte, error) {
	c, err := x.client(cred)
	if err != nil {
		return nil, err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return nil, err
	}

	file, _, resp, err := c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		return nil, platformError(err, resp, "failed to get file content",
			goerr.V("full_name", repo.FullName()),
			goerr.V("path", path),
		)
	}
	if file == nil {
		return nil, goerr.New("path is not a file",
			goerr.V("full_name", repo.FullName()),
			goerr.V("path", path),
		)
	}

	// The contents API omits content of files over 1 MB and reports encoding "none"
	if file.GetEncoding() == "none" {
		blob, resp, err := c.gh.Git.GetBlobRaw(ctx, repo.Owner, repo.Name, file.GetSHA())
		if err != nil {
			return nil, platformError(err, resp, "failed to get file blob",
				goerr.V("full_name", repo.FullName()),
				goerr.V("path", path),
				goerr.V("sha", file.GetSHA()),
			)
		}
		return blob, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content",
			goerr.V("full_name", repo.FullName()),
			goerr.V("path", path),
		)
	}

	return []byte(content), nil
}

func (x *Client) ListIssues(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, state types.IssueState) ([]*model.RemoteIssue, error) {
	c, err := x.client(cred)
	if err != nil {
		return nil, err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListByRepoOptions{
		State:       string(state),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var issues []*model.RemoteIssue
	for {
		result, resp, err := c.gh.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, platformError(err, resp, "failed to list issues",
				goerr.V("full_name", repo.FullName()),
				goerr.V("page", opts.Page),
			)
		}

		for _, issue := range result {
			// issues API returns pull requests as well
			if issue.IsPullRequest() {
				continue
			}
			issues = append(issues, toRemoteIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed issues",
		slog.String("full_name", repo.FullName()),
		slog.Int("count", len(issues)),
	)
	return issues, nil
}

func (x *Client) CreateIssue(ctx context.Context, cred *model.Credential, repoID types.GitHubRepoID, tmpl *model.IssueTemplate) (*model.RemoteIssue, error) {
	c, err := x.client(cred)
	if err != nil {
		return nil, err
	}

	repo, err := x.lookupRepo(ctx, c, repoID)
	if err != nil {
		return nil, err
	}

	req := &github.IssueRequest{
		Title: github.String(tmpl.Title),
		Body:  github.String(tmpl.Body),
	}
	if len(tmpl.Labels) > 0 {
		labels := append([]string{}, tmpl.Labels...)
		req.Labels = &labels
	}

	issue, resp, err := c.gh.Issues.Create(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return nil, platformError(err, resp, "failed to create issue",
			goerr.V("full_name", repo.FullName()),
			goerr.V("title", tmpl.Title),
		)
	}

	logging.From(ctx).Info("Created issue",
		slog.String("full_name", repo.FullName()),
		slog.Int("number", issue.GetNumber()),
		slog.String("title", issue.GetTitle()),
	)
	return toRemoteIssue(issue), nil
}

func toRemoteIssue(issue *github.Issue) *model.RemoteIssue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return &model.RemoteIssue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labels,
		State:  types.IssueState(issue.GetState()),
	}
}
