package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapterstamp/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "watch <folder>",
		Short: "Regenerate the chapter list whenever the folder's audio files change",
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
			if opts.interactive {
				return errors.New("watch does not support --interactive")
			}
			if opts.output == "-" {
				return errors.New("watch needs an output file")
			}
			req, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}
			if !opts.yes {
				// nobody is there to answer; log the mismatch and carry on
				req.Confirm = nil
			}

			regenerate := func(runCtx context.Context, _ string) error {
				res, err := proc.Process(runCtx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Updated %s (%d chapters)\n", res.OutputPath, len(res.Entries))
				return nil
			}

			runCtx := cmd.Context()
			if err := regenerate(runCtx, ""); err != nil {
				ctx.logger.Warn(runCtx, "Initial generation failed: %v", err)
			}

			w, err := watcher.New(args[0], cfg.Library.Extensions, regenerate, ctx.logger, cfg.Watch.Debounce)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx.logger.Info(runCtx, "Watching %s, press Ctrl+C to stop", args[0])
			if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}
