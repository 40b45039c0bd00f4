package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"replylag/internal/config"
	"replylag/internal/sheet"
)

func main() {
	root := &cobra.Command{
		Use:           "replylag",
		Short:         "Annotate chat log workbooks with received-to-sent reply durations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newProcessCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func sheetColumns(cfg config.Config) sheet.Columns {
	return sheet.Columns{
		DirectionHeader: cfg.DirectionHeader,
		TimeHeader:      cfg.TimeHeader,
		SentValue:       cfg.SentValue,
		ReceivedValue:   cfg.ReceivedValue,
	}
}
