package cli

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/octoclass/pkg/cli/config"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is replaced in tests
var ConfigureLogging = func(cfg *config.Logging) error {
	return cfg.Configure()
}

type CLI struct{}

func New() *CLI {
	return &CLI{}
}

// Run parses argv and runs one subcommand. Logging is configured before the subcommand starts.
func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "octoclass",
		Usage: "Classroom repository provisioning and issue reconciliation for GitHub",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			reconcileCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(&logCfg); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logging configured", slog.Any("logging", &logCfg))
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", slog.Any("error", err))
		return err
	}

	return nil
}
