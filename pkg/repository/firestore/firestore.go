package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

const defaultDatabaseID = "(default)"

type Option func(*classroomRepository)

// WithCollectionPrefix prepends prefix to top level collection names, so that several
// deployments or test runs can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *classroomRepository) {
		r.prefix = prefix
	}
}

// New creates a Firestore classroom repository. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.ClassroomRepository, error) {
	if projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Firestore project ID is empty")
	}
	if databaseID == "" {
		databaseID = defaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		)
	}

	repo := &classroomRepository{client: client}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
