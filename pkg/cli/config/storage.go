package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/repository/firestore"
	"github.com/secmon-lab/octoclass/pkg/repository/memory"
	"github.com/secmon-lab/octoclass/pkg/repository/sqlite"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	StorageMemory    = "memory"
	StorageSQLite    = "sqlite"
	StorageFirestore = "firestore"
)

// Storage selects the backend of local records and the reconcile job queue
type Storage struct {
	backend    string
	sqlitePath string

	firestoreProjectID  string
	firestoreDatabaseID string
	firestorePrefix     string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage",
			Usage:       "Storage backend [memory|sqlite|firestore]",
			Category:    "Storage",
			Value:       StorageMemory,
			Sources:     cli.EnvVars("OCTOCLASS_STORAGE"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file",
			Category:    "Storage",
			Value:       "octoclass.db",
			Sources:     cli.EnvVars("OCTOCLASS_SQLITE_PATH"),
			Destination: &x.sqlitePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID, required for firestore storage",
			Category:    "Storage",
			Sources:     cli.EnvVars("OCTOCLASS_FIRESTORE_PROJECT_ID"),
			Destination: &x.firestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("OCTOCLASS_FIRESTORE_DATABASE_ID"),
			Destination: &x.firestoreDatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of Firestore collection names",
			Category:    "Storage",
			Sources:     cli.EnvVars("OCTOCLASS_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.firestorePrefix,
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("backend", x.backend)}
	switch x.backend {
	case StorageSQLite:
		attrs = append(attrs, slog.String("sqlitePath", x.sqlitePath))
	case StorageFirestore:
		attrs = append(attrs,
			slog.String("firestoreProjectID", x.firestoreProjectID),
			slog.String("firestoreDatabaseID", x.firestoreDatabaseID),
			slog.String("firestorePrefix", x.firestorePrefix),
		)
	}
	return slog.GroupValue(attrs...)
}

// Store is a set of opened storage clients. Close releases them.
type Store struct {
	Classroom interfaces.ClassroomRepository
	JobQueue  interfaces.JobQueue
	Close     func()
}

func (x *Storage) Open(ctx context.Context) (*Store, error) {
	switch x.backend {
	case StorageMemory, "":
		logging.From(ctx).Warn("memory storage is used, records are lost on exit")
		return &Store{
			Classroom: memory.New(),
			JobQueue:  memory.NewJobQueue(),
			Close:     func() {},
		}, nil

	case StorageSQLite:
		db, err := sqlite.NewDB(ctx, x.sqlitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Classroom: sqlite.NewClassroomRepository(db),
			JobQueue:  sqlite.NewJobQueue(db),
			Close: func() {
				if err := db.Close(); err != nil {
					logging.From(ctx).Error("failed to close sqlite database", slog.Any("error", err))
				}
			},
		}, nil

	case StorageFirestore:
		if x.firestoreProjectID == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "firestore storage requires --firestore-project-id")
		}
		repo, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID,
			firestore.WithCollectionPrefix(x.firestorePrefix))
		if err != nil {
			return nil, err
		}
		logging.From(ctx).Warn("firestore storage keeps reconcile jobs in memory")
		return &Store{
			Classroom: repo,
			JobQueue:  memory.NewJobQueue(),
			Close:     func() {},
		}, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown storage backend", goerr.V("storage", x.backend))
	}
}
