package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"github.com/secmon-lab/octoclass/pkg/utils/safe"
)

var _ interfaces.ClassroomRepository = (*ClassroomRepository)(nil)

// ClassroomRepository is the SQLite implementation of interfaces.ClassroomRepository
type ClassroomRepository struct {
	db *DB
}

func NewClassroomRepository(db *DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// Assignment operations

func (r *ClassroomRepository) PutAssignment(ctx context.Context, assignment model.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid assignment", goerr.V("error", err.Error()))
	}

	const query = `INSERT INTO assignments
		(id, kind, title, slug, org_login, org_github_id, org_install_id, creator_login, creator_token,
		 starter_repo_id, public_repo, max_members, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			slug = excluded.slug,
			org_login = excluded.org_login,
			org_github_id = excluded.org_github_id,
			org_install_id = excluded.org_install_id,
			creator_login = excluded.creator_login,
			creator_token = excluded.creator_token,
			starter_repo_id = excluded.starter_repo_id,
			public_repo = excluded.public_repo,
			max_members = excluded.max_members,
			created_at = excluded.created_at`

	rec := model.NewAssignmentRecord(assignment)
	_, err := r.db.Writer.ExecContext(ctx, query,
		rec.ID, rec.Kind, rec.Title, rec.Slug,
		rec.Organization.Login, rec.Organization.GitHubID, rec.Organization.InstallID,
		rec.Creator.Login, string(rec.Creator.Token),
		rec.StarterRepoID, boolToInt(rec.PublicRepo), rec.MaxMembers, toUnix(rec.CreatedAt),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to put assignment", goerr.V("assignmentID", rec.ID))
	}

	return nil
}

func (r *ClassroomRepository) GetAssignment(ctx context.Context, id types.AssignmentID) (model.Assignment, error) {
	const query = `SELECT id, kind, title, slug, org_login, org_github_id, org_install_id, creator_login,
		creator_token, starter_repo_id, public_repo, max_members, created_at
		FROM assignments WHERE id = ?`

	var (
		rec       model.AssignmentRecord
		token     string
		public    int
		createdAt int64
	)
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.Kind, &rec.Title, &rec.Slug,
		&rec.Organization.Login, &rec.Organization.GitHubID, &rec.Organization.InstallID,
		&rec.Creator.Login, &token,
		&rec.StarterRepoID, &public, &rec.MaxMembers, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "assignment not found", goerr.V("assignmentID", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assignment", goerr.V("assignmentID", id))
	}

	rec.Creator.Token = types.GitHubToken(token)
	rec.PublicRepo = public != 0
	rec.CreatedAt = fromUnix(createdAt)

	return rec.Assignment()
}

// IssueSpec operations

func (r *ClassroomRepository) AddIssueSpec(ctx context.Context, spec *model.IssueSpec) error {
	if err := spec.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid issue spec", goerr.V("error", err.Error()))
	}

	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assignments WHERE id = ?)`, spec.AssignmentID).Scan(&exists); err != nil {
		return goerr.Wrap(err, "failed to check assignment", goerr.V("assignmentID", spec.AssignmentID))
	}
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "assignment not found", goerr.V("assignmentID", spec.AssignmentID))
	}

	position := spec.Position
	if position == 0 {
		const lastQuery = `SELECT COALESCE(MAX(position), 0) FROM issue_specs WHERE assignment_id = ?`
		if err := tx.QueryRowContext(ctx, lastQuery, spec.AssignmentID).Scan(&position); err != nil {
			return goerr.Wrap(err, "failed to get last position", goerr.V("assignmentID", spec.AssignmentID))
		}
		position++
	}

	const insert = `INSERT INTO issue_specs (assignment_id, title, body, position) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insert, spec.AssignmentID, spec.Title, spec.Body, position); err != nil {
		return goerr.Wrap(err, "failed to insert issue spec", goerr.V("assignmentID", spec.AssignmentID))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit issue spec")
	}

	return nil
}

func (r *ClassroomRepository) ListIssueSpecs(ctx context.Context, id types.AssignmentID) ([]*model.IssueSpec, error) {
	const query = `SELECT assignment_id, title, body, position FROM issue_specs
		WHERE assignment_id = ? ORDER BY position, id`

	rows, err := r.db.Reader.QueryContext(ctx, query, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issue specs", goerr.V("assignmentID", id))
	}
	defer safe.Close(ctx, rows)

	var specs []*model.IssueSpec
	for rows.Next() {
		var spec model.IssueSpec
		if err := rows.Scan(&spec.AssignmentID, &spec.Title, &spec.Body, &spec.Position); err != nil {
			return nil, goerr.Wrap(err, "failed to scan issue spec")
		}
		specs = append(specs, &spec)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate issue specs")
	}

	return specs, nil
}

// ProvisionedRepository operations

const provisionedColumns = `repo_id, repo_name, full_name, assignment_id, principal_kind, principal_login,
	principal_team_id, principal_team_slug, private, created_at`

func (r *ClassroomRepository) CreateProvisionedRepository(ctx context.Context, repo *model.ProvisionedRepository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid provisioned repository", goerr.V("error", err.Error()))
	}

	query := `INSERT INTO provisioned_repositories (` + provisionedColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query,
		repo.RepoID, repo.RepoName, repo.FullName, repo.AssignmentID,
		repo.Principal.Kind, repo.Principal.Login, repo.Principal.TeamID, repo.Principal.TeamSlug,
		boolToInt(repo.Private), toUnix(repo.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "provisioned repository already exists",
				goerr.V("repoID", repo.RepoID),
			)
		}
		return goerr.Wrap(err, "failed to create provisioned repository", goerr.V("repoID", repo.RepoID))
	}

	return nil
}

func (r *ClassroomRepository) GetProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.ProvisionedRepository, error) {
	query := `SELECT ` + provisionedColumns + ` FROM provisioned_repositories WHERE repo_id = ?`

	repo, err := scanProvisionedRepository(r.db.Reader.QueryRowContext(ctx, query, repoID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "provisioned repository not found", goerr.V("repoID", repoID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get provisioned repository", goerr.V("repoID", repoID))
	}

	return repo, nil
}

func (r *ClassroomRepository) ListProvisionedRepositories(ctx context.Context, id types.AssignmentID) ([]*model.ProvisionedRepository, error) {
	query := `SELECT ` + provisionedColumns + ` FROM provisioned_repositories WHERE assignment_id = ? ORDER BY repo_id`

	rows, err := r.db.Reader.QueryContext(ctx, query, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list provisioned repositories", goerr.V("assignmentID", id))
	}
	defer safe.Close(ctx, rows)

	var repos []*model.ProvisionedRepository
	for rows.Next() {
		repo, err := scanProvisionedRepository(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan provisioned repository")
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate provisioned repositories")
	}

	return repos, nil
}

func (r *ClassroomRepository) DeleteProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) error {
	result, err := r.db.Writer.ExecContext(ctx, `DELETE FROM provisioned_repositories WHERE repo_id = ?`, repoID)
	if err != nil {
		return goerr.Wrap(err, "failed to delete provisioned repository", goerr.V("repoID", repoID))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to check rows affected")
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "provisioned repository not found", goerr.V("repoID", repoID))
	}

	return nil
}

func scanProvisionedRepository(s scanner) (*model.ProvisionedRepository, error) {
	var (
		repo      model.ProvisionedRepository
		private   int
		createdAt int64
	)
	err := s.Scan(
		&repo.RepoID, &repo.RepoName, &repo.FullName, &repo.AssignmentID,
		&repo.Principal.Kind, &repo.Principal.Login, &repo.Principal.TeamID, &repo.Principal.TeamSlug,
		&private, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	repo.Private = private != 0
	repo.CreatedAt = fromUnix(createdAt)
	return &repo, nil
}
