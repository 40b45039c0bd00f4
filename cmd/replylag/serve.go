package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"replylag/internal/api"
	"replylag/internal/config"
	"replylag/internal/processor"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the upload web service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg.LogLevel)

			slog.Info("replylag starting", "port", cfg.Port)

			proc := processor.New(sheetColumns(cfg), slog.Default())
			srv := api.NewServer(cfg.Port, int64(cfg.MaxUploadMB)<<20, proc, slog.Default())

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				slog.Info("shutting down")
			}
			return nil
		},
	}
}
