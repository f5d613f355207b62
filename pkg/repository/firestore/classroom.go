package firestore

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionAssignment = "assignment"
	collectionIssueSpec  = "issue_spec"
	collectionRepository = "provisioned_repository"
)

type classroomRepository struct {
	client *firestore.Client
	prefix string
}

// collection returns a top level collection. Subcollections are not prefixed.
func (r *classroomRepository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.prefix + name)
}

// ToFirestoreID validates an assignment ID as a Firestore document ID. A document ID must not
// contain '/' and must not be "." or "..".
func ToFirestoreID(id types.AssignmentID) (string, error) {
	s := string(id)
	if s == "" || s == "." || s == ".." || strings.Contains(s, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "invalid assignment ID for document ID",
			goerr.V("assignmentID", id),
		)
	}
	return s, nil
}

// issueSpecDoc keeps insertion time to break ties of the same position
type issueSpecDoc struct {
	model.IssueSpec
	CreatedAt time.Time
}

func (r *classroomRepository) assignmentDoc(id types.AssignmentID) (*firestore.DocumentRef, error) {
	docID, err := ToFirestoreID(id)
	if err != nil {
		return nil, err
	}
	return r.collection(collectionAssignment).Doc(docID), nil
}

// Assignment operations

func (r *classroomRepository) PutAssignment(ctx context.Context, assignment model.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid assignment", goerr.V("error", err.Error()))
	}

	docRef, err := r.assignmentDoc(assignment.Meta().ID)
	if err != nil {
		return err
	}

	if _, err := docRef.Set(ctx, model.NewAssignmentRecord(assignment)); err != nil {
		return goerr.Wrap(err, "failed to put assignment",
			goerr.V("assignmentID", assignment.Meta().ID),
		)
	}

	return nil
}

func (r *classroomRepository) GetAssignment(ctx context.Context, id types.AssignmentID) (model.Assignment, error) {
	docRef, err := r.assignmentDoc(id)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "assignment not found",
				goerr.V("assignmentID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get assignment",
			goerr.V("assignmentID", id),
		)
	}

	var rec model.AssignmentRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assignment",
			goerr.V("assignmentID", id),
		)
	}

	return rec.Assignment()
}

// IssueSpec operations

func (r *classroomRepository) AddIssueSpec(ctx context.Context, spec *model.IssueSpec) error {
	if err := spec.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid issue spec", goerr.V("error", err.Error()))
	}

	docRef, err := r.assignmentDoc(spec.AssignmentID)
	if err != nil {
		return err
	}
	specs := docRef.Collection(collectionIssueSpec)

	var position int
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "assignment not found",
					goerr.V("assignmentID", spec.AssignmentID),
				)
			}
			return goerr.Wrap(err, "failed to get assignment",
				goerr.V("assignmentID", spec.AssignmentID),
			)
		}

		position = spec.Position
		if position == 0 {
			iter := tx.Documents(specs)
			defer iter.Stop()

			for {
				snap, err := iter.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to iterate issue specs",
						goerr.V("assignmentID", spec.AssignmentID),
					)
				}

				var doc issueSpecDoc
				if err := snap.DataTo(&doc); err != nil {
					return goerr.Wrap(err, "failed to decode issue spec")
				}
				position = max(position, doc.Position)
			}
			position++
		}

		doc := issueSpecDoc{IssueSpec: *spec, CreatedAt: time.Now().UTC()}
		doc.Position = position
		return tx.Create(specs.NewDoc(), doc)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to add issue spec", goerr.V("assignmentID", spec.AssignmentID))
	}

	return nil
}

func (r *classroomRepository) ListIssueSpecs(ctx context.Context, id types.AssignmentID) ([]*model.IssueSpec, error) {
	docRef, err := r.assignmentDoc(id)
	if err != nil {
		return nil, err
	}

	iter := docRef.Collection(collectionIssueSpec).Documents(ctx)
	defer iter.Stop()

	var docs []*issueSpecDoc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate issue specs",
				goerr.V("assignmentID", id),
			)
		}

		var doc issueSpecDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode issue spec")
		}
		docs = append(docs, &doc)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Position != docs[j].Position {
			return docs[i].Position < docs[j].Position
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	specs := make([]*model.IssueSpec, len(docs))
	for i, doc := range docs {
		s := doc.IssueSpec
		specs[i] = &s
	}

	return specs, nil
}

// ProvisionedRepository operations

func (r *classroomRepository) CreateProvisionedRepository(ctx context.Context, repo *model.ProvisionedRepository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid provisioned repository", goerr.V("error", err.Error()))
	}

	docRef := r.collection(collectionRepository).Doc(repo.RepoID.String())
	if _, err := docRef.Create(ctx, repo); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "provisioned repository already exists",
				goerr.V("repoID", repo.RepoID),
			)
		}
		return goerr.Wrap(err, "failed to create provisioned repository",
			goerr.V("repoID", repo.RepoID),
		)
	}

	return nil
}

func (r *classroomRepository) GetProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.ProvisionedRepository, error) {
	snap, err := r.collection(collectionRepository).Doc(repoID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "provisioned repository not found",
				goerr.V("repoID", repoID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get provisioned repository",
			goerr.V("repoID", repoID),
		)
	}

	var repo model.ProvisionedRepository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode provisioned repository",
			goerr.V("repoID", repoID),
		)
	}

	return &repo, nil
}

func (r *classroomRepository) ListProvisionedRepositories(ctx context.Context, id types.AssignmentID) ([]*model.ProvisionedRepository, error) {
	query := r.collection(collectionRepository).Where("AssignmentID", "==", string(id))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var repos []*model.ProvisionedRepository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate provisioned repositories",
				goerr.V("assignmentID", id),
			)
		}

		var repo model.ProvisionedRepository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode provisioned repository")
		}
		repos = append(repos, &repo)
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].RepoID < repos[j].RepoID
	})

	return repos, nil
}

func (r *classroomRepository) DeleteProvisionedRepository(ctx context.Context, repoID types.GitHubRepoID) error {
	// Delete with an Exists precondition fails with NotFound for a missing document
	docRef := r.collection(collectionRepository).Doc(repoID.String())
	if _, err := docRef.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "provisioned repository not found",
				goerr.V("repoID", repoID),
			)
		}
		return goerr.Wrap(err, "failed to delete provisioned repository",
			goerr.V("repoID", repoID),
		)
	}

	return nil
}
