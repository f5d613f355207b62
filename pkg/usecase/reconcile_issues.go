package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// ReconcileIssues creates issues of the starter repository's issue templates that the
// provisioned repository does not have yet. An issue is identified by its exact title, so
// running it again creates nothing. Existing issues are never updated or deleted.
func (x *UseCase) ReconcileIssues(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
	result, err := x.reconcileIssues(ctx, repoID)
	x.clients.Metrics().ReconcileFinished(err)
	return result, err
}

func (x *UseCase) reconcileIssues(ctx context.Context, repoID types.GitHubRepoID) (*model.ReconcileResult, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	store, err := x.classroom()
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(slog.Any("repo_id", repoID))
	ctx = logging.With(ctx, logger)

	result := &model.ReconcileResult{
		RepoID:    repoID,
		Created:   []string{},
		Skipped:   []string{},
		Discarded: []string{},
	}

	provisioned, err := store.GetProvisionedRepository(ctx, repoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Debug("repository is not provisioned by octoclass, skip")
			return result, nil
		}
		return nil, goerr.Wrap(err, "failed to get provisioned repository", goerr.V("repo_id", repoID))
	}

	assignment, err := store.GetAssignment(ctx, provisioned.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("assignment of provisioned repository not found, skip",
				slog.String("assignment_id", provisioned.AssignmentID.String()),
			)
			return result, nil
		}
		return nil, goerr.Wrap(err, "failed to get assignment", goerr.V("assignment_id", provisioned.AssignmentID))
	}

	meta := assignment.Meta()
	if !meta.HasStarterRepo() {
		logger.Debug("assignment has no starter repository, skip")
		return result, nil
	}
	cred := meta.CreatorCredential()

	templates, err := loadIssueTemplates(ctx, gh, cred, meta.StarterRepoID, result)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		logger.Debug("no issue template found", slog.Any("starter_repo_id", meta.StarterRepoID))
		return result, nil
	}

	existing, err := gh.ListIssues(ctx, cred, repoID, types.IssueStateAll)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues", goerr.V("repo_id", repoID))
	}

	titles := make(map[string]struct{}, len(existing))
	for _, issue := range existing {
		titles[issue.Title] = struct{}{}
	}

	for _, tmpl := range templates {
		if _, found := titles[tmpl.Title]; found {
			result.Skipped = append(result.Skipped, tmpl.Title)
			continue
		}

		issue, err := gh.CreateIssue(ctx, cred, repoID, tmpl)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create issue",
				goerr.V("repo_id", repoID),
				goerr.V("title", tmpl.Title),
			)
		}
		titles[tmpl.Title] = struct{}{}
		result.Created = append(result.Created, tmpl.Title)
		x.clients.Metrics().IssueCreated(metrics.IssueSourceTemplate)

		logger.Info("issue created from template",
			slog.String("title", tmpl.Title),
			slog.Int("number", issue.Number),
		)
	}

	logger.Info("issues reconciled",
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("discarded", len(result.Discarded)),
	)

	return result, nil
}

// loadIssueTemplates returns parsed issue templates of the starter repository in listing
// order. Paths of files that are not valid templates are added to result.Discarded.
func loadIssueTemplates(ctx context.Context, gh interfaces.GitHub, cred *model.Credential, starterID types.GitHubRepoID, result *model.ReconcileResult) ([]*model.IssueTemplate, error) {
	logger := logging.From(ctx)

	files, err := gh.ListFiles(ctx, cred, starterID, model.IssueTemplateDir)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to list issue template files", goerr.V("starter_repo_id", starterID))
	}

	var templates []*model.IssueTemplate
	for _, file := range files {
		if file.Type != types.RepoFileTypeFile || !model.IsIssueTemplatePath(file.Path) {
			continue
		}

		data, err := gh.GetFileContent(ctx, cred, starterID, file.Path)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				logger.Warn("issue template disappeared, discard", slog.String("path", file.Path))
				result.Discarded = append(result.Discarded, file.Path)
				continue
			}
			return nil, goerr.Wrap(err, "failed to get issue template",
				goerr.V("starter_repo_id", starterID),
				goerr.V("path", file.Path),
			)
		}

		tmpl, err := model.ParseIssueTemplate(data)
		if err != nil {
			logger.Warn("invalid issue template, discard",
				slog.String("path", file.Path),
				slog.Any("error", err),
			)
			result.Discarded = append(result.Discarded, file.Path)
			continue
		}
		if tmpl == nil {
			logger.Debug("issue template has no title, discard", slog.String("path", file.Path))
			result.Discarded = append(result.Discarded, file.Path)
			continue
		}

		templates = append(templates, tmpl)
	}

	return templates, nil
}
