package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"replylag/internal/config"
	"replylag/internal/processor"
)

func newProcessCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "process <input.xlsx>",
		Short: "Annotate a workbook on disk without the web service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg.LogLevel)

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			proc := processor.New(sheetColumns(cfg), slog.Default())
			res, err := proc.Process(in)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = processedName(args[0])
			}
			if err := os.WriteFile(out, res.Output, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("workbook processed",
				"input", args[0],
				"output", out,
				"rows", res.Rows,
				"matches", res.Matches,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default processed_<input> beside the input)")
	return cmd
}

func processedName(input string) string {
	return filepath.Join(filepath.Dir(input), "processed_"+filepath.Base(input))
}
