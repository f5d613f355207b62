package cli

import (
	"context"

	"github.com/secmon-lab/octoclass/pkg/cli/config"
	"github.com/secmon-lab/octoclass/pkg/infra"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
)

// newInfraOptions builds clients shared by commands. The job queue is not included, the
// caller decides whether reconciliation goes through it.
func newInfraOptions(ctx context.Context, githubApp config.GitHubApp, bigQuery *config.BigQuery, store *config.Store, m *metrics.Metrics) ([]infra.Option, error) {
	ghApp, err := githubApp.New()
	if err != nil {
		return nil, err
	}

	options := []infra.Option{
		infra.WithGitHub(ghApp),
		infra.WithClassroomRepository(store.Classroom),
		infra.WithMetrics(m),
	}

	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	return options, nil
}
