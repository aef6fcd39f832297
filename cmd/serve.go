package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jupark12/job-dashboard/config"
	"github.com/jupark12/job-dashboard/generator"
	"github.com/jupark12/job-dashboard/logger"
	"github.com/jupark12/job-dashboard/queue"
	"github.com/jupark12/job-dashboard/server"
	"github.com/jupark12/job-dashboard/worker"
)

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer cleanup()

			seed := seedOrNow(cfg.Loader.Seed)
			gen := generator.New(generator.WithSeed(seed))
			source := worker.NewMockSource(gen, cfg.Loader.Count, cfg.Loader.FailureRate, seed+1)

			jobQueue := queue.NewJobQueue()
			w := worker.NewWorker("loader", jobQueue, worker.NewLoader(source, cfg.Loader.Delay), log)

			srv := server.NewServer(jobQueue, w, server.Options{
				Addr:           cfg.Addr(),
				RunMode:        cfg.RunMode,
				AllowedOrigins: cfg.CORS.AllowedOrigins,
			}, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.WithField("app", cfg.AppName).Infof("dashboard starting with %d jobs per load", cfg.Loader.Count)
			if err := srv.Run(ctx); err != nil {
				return err
			}
			log.Info("dashboard stopped")
			return nil
		},
	}
}
