package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
	"github.com/secmon-lab/octoclass/pkg/utils/errutil"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// ProvisionRepository creates the remote repository of an accepted assignment, pushes the
// starter code, grants access to the principal, opens the assignment's issues and stores the
// local record. When any step after the repository creation fails, the repository is deleted
// and a *model.ProvisioningError is returned.
func (x *UseCase) ProvisionRepository(ctx context.Context, input *model.ProvisionRepositoryInput) (*model.ProvisionedRepository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	store, err := x.classroom()
	if err != nil {
		return nil, err
	}

	assignment, err := store.GetAssignment(ctx, input.AssignmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assignment", goerr.V("assignment_id", input.AssignmentID))
	}
	if err := assignment.ValidatePrincipal(input.Principal); err != nil {
		return nil, err
	}

	specs, err := store.ListIssueSpecs(ctx, input.AssignmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issue specs", goerr.V("assignment_id", input.AssignmentID))
	}

	saga := &provisionSaga{
		gh:         gh,
		store:      store,
		metrics:    x.clients.Metrics(),
		assignment: assignment,
		principal:  input.Principal,
		specs:      specs,
		state:      types.SagaStatePending,
	}

	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.String("assignment_id", input.AssignmentID.String()),
		slog.String("principal", input.Principal.Name()),
	))

	result, err := saga.run(ctx)
	x.clients.Metrics().SagaFinished(saga.state)
	x.writeProvisionLog(ctx, saga, err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// sagaStep is one remote or local action of provisioning. compensate undoes run and must be
// idempotent. A step without compensate is undone by the compensation of an earlier step.
type sagaStep struct {
	name       string
	reached    types.SagaState
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

type provisionSaga struct {
	gh      interfaces.GitHub
	store   interfaces.ClassroomRepository
	metrics *metrics.Metrics

	assignment model.Assignment
	principal  model.Principal
	specs      []*model.IssueSpec

	state  types.SagaState
	remote *model.GitHubRepo
	record *model.ProvisionedRepository
}

func (x *provisionSaga) steps() []sagaStep {
	return []sagaStep{
		{name: "create repository", reached: types.SagaStateRepoCreated, run: x.createRepository, compensate: x.deleteRepository},
		{name: "push starter code", reached: types.SagaStateCodePushed, run: x.pushStarterCode},
		{name: "grant access", reached: types.SagaStateCollaboratorAdded, run: x.grantAccess},
		{name: "open issues", reached: types.SagaStateIssuesOpened, run: x.openIssues},
		{name: "store record", run: x.storeRecord},
	}
}

func (x *provisionSaga) run(ctx context.Context) (*model.ProvisionedRepository, error) {
	steps := x.steps()

	for i, step := range steps {
		err := step.run(ctx)
		if err == nil {
			if step.reached != "" {
				x.state = step.reached
			}
			logging.From(ctx).Debug("provisioning step done",
				slog.String("step", step.name),
				slog.Any("state", x.state),
			)
			continue
		}

		// Nothing has been created yet
		if i == 0 {
			x.state = types.SagaStateFailed
			return nil, goerr.Wrap(err, "failed to create repository")
		}

		logging.From(ctx).Warn("provisioning step failed, compensating",
			slog.String("step", step.name),
			slog.Any("state", x.state),
			slog.Any("repo_id", x.remote.ID),
			slog.Any("error", err),
		)

		compErr := x.compensate(ctx, steps[:i])
		provErr := &model.ProvisioningError{
			RepoID:          x.remote.ID,
			Cause:           err,
			CompensationErr: compErr,
		}
		if compErr != nil {
			x.state = types.SagaStateFailed
			errutil.HandleError(ctx, "failed to delete repository of failed provisioning", compErr)
		} else {
			x.state = types.SagaStateRolledBack
		}
		provErr.State = x.state

		return nil, provErr
	}

	return x.record, nil
}

// compensate undoes done steps in reverse order. It runs to the end even if the caller's
// context is cancelled and returns the first compensation failure.
func (x *provisionSaga) compensate(ctx context.Context, done []sagaStep) error {
	ctx = logging.Detach(ctx)

	var first error
	for i := len(done) - 1; i >= 0; i-- {
		if done[i].compensate == nil {
			continue
		}
		if err := done[i].compensate(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (x *provisionSaga) createRepository(ctx context.Context) error {
	meta := x.assignment.Meta()
	name := model.RepoName(meta.Slug, x.principal)

	repo, err := x.gh.CreateRepository(ctx, meta.Organization.Credential(), &model.CreateRepositoryInput{
		Owner:       meta.Organization.Login,
		Name:        name,
		Private:     !meta.PublicRepo,
		Description: model.RepoDescription(name),
	})
	if err != nil {
		return err
	}

	x.remote = repo
	return nil
}

func (x *provisionSaga) deleteRepository(ctx context.Context) error {
	meta := x.assignment.Meta()
	err := x.gh.DeleteRepository(ctx, meta.Organization.Credential(), x.remote.ID)
	if errors.Is(err, types.ErrNotFound) {
		err = nil
	}
	x.metrics.Compensated(err)

	if err != nil {
		return goerr.Wrap(err, "failed to delete repository", goerr.V("repo_id", x.remote.ID))
	}
	logging.From(ctx).Info("deleted repository of failed provisioning", slog.Any("repo_id", x.remote.ID))
	return nil
}

func (x *provisionSaga) pushStarterCode(ctx context.Context) error {
	meta := x.assignment.Meta()
	if !meta.HasStarterRepo() {
		return nil
	}

	return x.gh.CopyContents(ctx, meta.CreatorCredential(), meta.StarterRepoID, x.remote.ID)
}

func (x *provisionSaga) grantAccess(ctx context.Context) error {
	org := x.assignment.Meta().Organization

	switch x.principal.Kind {
	case types.PrincipalKindTeam:
		return x.gh.AddTeamRepository(ctx, org.Credential(), x.remote.ID, org.GitHubID, x.principal.TeamID)
	default:
		return x.gh.AddCollaborator(ctx, org.Credential(), x.remote.ID, x.principal.Login)
	}
}

func (x *provisionSaga) openIssues(ctx context.Context) error {
	cred := x.assignment.Meta().CreatorCredential()

	for _, spec := range x.specs {
		if _, err := x.gh.CreateIssue(ctx, cred, x.remote.ID, &model.IssueTemplate{
			Title: spec.Title,
			Body:  spec.Body,
		}); err != nil {
			return goerr.Wrap(err, "failed to open issue", goerr.V("title", spec.Title))
		}
		x.metrics.IssueCreated(metrics.IssueSourceSpec)
	}

	return nil
}

func (x *provisionSaga) storeRecord(ctx context.Context) error {
	meta := x.assignment.Meta()
	record := &model.ProvisionedRepository{
		RepoID:       x.remote.ID,
		RepoName:     x.remote.Name,
		FullName:     x.remote.FullName(),
		AssignmentID: meta.ID,
		Principal:    x.principal,
		Private:      x.remote.Private,
		CreatedAt:    logging.CtxTime(ctx).UTC(),
	}

	if err := x.store.CreateProvisionedRepository(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to store provisioned repository")
	}

	x.record = record
	return nil
}

// writeProvisionLog exports the saga outcome to BigQuery. A failure is reported but does not
// change the result of provisioning.
func (x *UseCase) writeProvisionLog(ctx context.Context, saga *provisionSaga, sagaErr error) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	entry := &model.ProvisionLog{
		ID:            types.NewAuditID(),
		Timestamp:     logging.CtxTime(ctx).UTC(),
		AssignmentID:  saga.assignment.Meta().ID,
		PrincipalKind: string(saga.principal.Kind),
		Principal:     saga.principal.Name(),
		FinalState:    saga.state,
	}
	if saga.remote != nil {
		entry.RepoID = int64(saga.remote.ID)
		entry.RepoName = saga.remote.Name
	}
	if sagaErr != nil {
		entry.Error = sagaErr.Error()
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq, entry)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare provision log table", err)
		return
	}

	if err := bq.Insert(ctx, schema, model.NewProvisionLogRecord(entry)); err != nil {
		errutil.HandleError(ctx, "failed to insert provision log", goerr.Wrap(err, "failed to insert provision log"))
	}
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, data any) (bigquery.Schema, error) {
	schema, err := bqs.Infer(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
