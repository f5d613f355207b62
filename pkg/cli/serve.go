package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/octoclass/pkg/cli/config"
	"github.com/secmon-lab/octoclass/pkg/controller/server"
	"github.com/secmon-lab/octoclass/pkg/controller/worker"
	"github.com/secmon-lab/octoclass/pkg/infra"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
	"github.com/secmon-lab/octoclass/pkg/usecase"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		storage   config.Storage
		bigQuery  config.BigQuery
		workerCfg config.Worker
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOCLASS_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			storage.Flags(),
			bigQuery.Flags(),
			workerCfg.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Storage", &storage),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Worker", &workerCfg),
				slog.Any("Sentry", &sentry),
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

			m := metrics.New()
			infraOptions, err := newInfraOptions(ctx, githubApp, &bigQuery, store, m)
			if err != nil {
				return err
			}
			if workerCfg.Enabled() {
				infraOptions = append(infraOptions, infra.WithJobQueue(store.JobQueue))
			}

			uc := usecase.New(infra.New(infraOptions...))
			s := server.New(uc,
				server.WithGitHubSecret(githubApp.Secret()),
				server.WithMetricsHandler(m.Handler()),
			)

			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      2 * time.Minute,
			}

			var w *worker.Worker
			if workerCfg.Enabled() {
				w = worker.New(uc, store.JobQueue, append(workerCfg.Options(), worker.WithMetrics(m))...)
			}

			return runServer(ctx, httpServer, w)
		},
	}
}

// runServer serves HTTP and runs the reconcile worker until SIGINT or SIGTERM is received or
// one of them fails. The worker stops after in-flight HTTP requests are drained.
func runServer(ctx context.Context, httpServer *http.Server, w *worker.Worker) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(sigCtx)
	workerCtx, stopWorker := context.WithCancel(logging.With(context.WithoutCancel(ctx), logging.Default()))
	defer stopWorker()

	if w != nil {
		eg.Go(func() error {
			if err := w.Run(workerCtx); err != nil {
				return goerr.Wrap(err, "reconcile worker stopped with error")
			}
			return nil
		})
	}

	eg.Go(func() error {
		logging.Default().Info("starting http server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to listen and serve")
		}
		return nil
	})

	eg.Go(func() error {
		defer stopWorker()
		<-egCtx.Done()
		logging.Default().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
		return nil
	})

	return eg.Wait()
}
