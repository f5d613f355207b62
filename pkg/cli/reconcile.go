package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/octoclass/pkg/cli/config"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
	"github.com/secmon-lab/octoclass/pkg/usecase"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func reconcileCommand() *cli.Command {
	var (
		repoID int64

		githubApp config.GitHubApp
		storage   config.Storage
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)

	reconcileFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "repo-id",
			Usage:       "GitHub repository ID of a provisioned repository",
			Aliases:     []string{"r"},
			Required:    true,
			Destination: &repoID,
		},
	}

	return &cli.Command{
		Name:  "reconcile",
		Usage: "Create issues of a provisioned repository from the issue templates of its starter repository",
		Flags: slice.Flatten(
			reconcileFlags,
			githubApp.Flags(),
			storage.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if repoID <= 0 {
				return goerr.Wrap(types.ErrValidationFailed, "--repo-id must be positive", goerr.V("repo_id", repoID))
			}

			logging.Default().Info("starting reconcile",
				slog.Int64("RepoID", repoID),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Storage", &storage),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			store, err := storage.Open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			infraOptions, err := newInfraOptions(ctx, githubApp, &bigQuery, store, metrics.New())
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infraOptions...))
			result, err := uc.ReconcileIssues(ctx, types.GitHubRepoID(repoID))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return goerr.Wrap(err, "failed to write result")
			}
			return nil
		},
	}
}
