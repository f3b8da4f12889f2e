package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secondbrain-app/secondbrain/pkg/cli/config"
	"github.com/secondbrain-app/secondbrain/pkg/controller/server"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gitrepo"
	"github.com/secondbrain-app/secondbrain/pkg/repository/memory"
	"github.com/secondbrain-app/secondbrain/pkg/usecase"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr          string
		workspaceRoot string

		github    config.GitHub
		firestore config.Firestore
		bigQuery  config.BigQuery
		gemini    config.Gemini
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("SECONDBRAIN_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "git-workspace",
			Usage:       "Directory containing per-user Git repositories",
			Sources:     cli.EnvVars("SECONDBRAIN_GIT_WORKSPACE"),
			Destination: &workspaceRoot,
			Required:    true,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			gemini.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitWorkspace", workspaceRoot),
				slog.Any("GitHub", github),
				slog.Any("Firestore", firestore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Gemini", gemini),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGit(gitrepo.New()),
			}

			if firestore.Enabled() {
				repo, err := firestore.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithRepository(repo))
			} else {
				logging.Default().Warn("firestore is not configured, using in-memory repository")
				infraOptions = append(infraOptions, infra.WithRepository(memory.New()))
			}

			if github.Enabled() {
				ghClient, err := github.NewClient(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGitHub(ghClient))
			}

			if bigQuery.Enabled() {
				sink, err := bigQuery.NewSink(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithActivitySink(sink))
			}

			if gemini.Enabled() {
				genAI, err := gemini.NewClient()
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGenAI(genAI))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, usecase.WithWorkspaceRoot(workspaceRoot))
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
