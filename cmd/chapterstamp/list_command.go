package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/probe"
	"github.com/nguyentantai21042004/chapterstamp/internal/processor"
	"github.com/nguyentantai21042004/chapterstamp/internal/timestamp"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sortBy, orderFile string

	cmd := &cobra.Command{
		Use:   "list <folder>",
		Short: "List the audio files of a folder in chapter order with their durations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			proc, err := ctx.newProcessor()
			if err != nil {
				return err
			}
			resolver, err := ctx.newResolver()
			if err != nil {
				return err
			}

			req := processor.Request{Dir: args[0], SortBy: sortBy}
			if orderFile != "" {
				text, err := readText(orderFile, cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("order: %w", err)
				}
				req.Order = chapters.ParseNames(text)
			}

			files, err := proc.Files(cmd.Context(), req)
			if err != nil {
				return err
			}
			durations, err := probe.Batch(cmd.Context(), resolver, files, cfg.Performance.MaxConcurrentProbes)
			if err != nil {
				return err
			}

			rows, total := chapterRows(files, durations)

			out := cmd.OutOrStdout()
			if out == os.Stdout && !isTerminal(os.Stdout) {
				fmt.Fprint(out, renderChapterTSV(rows))
			} else {
				fmt.Fprintln(out, renderChapterTable(rows, total))
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d files, total %s\n", len(files), timestamp.Format(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Initial file order: name or mtime (default from config)")
	cmd.Flags().StringVar(&orderFile, "order", "", "File listing audio file names in chapter order")
	return cmd
}
