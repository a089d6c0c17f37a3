package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/processor"
	"github.com/nguyentantai21042004/chapterstamp/internal/reorder"
	"github.com/nguyentantai21042004/chapterstamp/internal/timestamp"
)

type generateOptions struct {
	offset      string
	namesFile   string
	orderFile   string
	sortBy      string
	output      string
	interactive bool
	yes         bool
	deriveNames bool
	transforms  chapters.Options
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.offset, "offset", "0", "Starting offset in seconds before the first chapter")
	flags.StringVarP(&o.namesFile, "names", "n", "", "File with one chapter name per line (- for stdin)")
	flags.StringVar(&o.orderFile, "order", "", "File listing audio file names in chapter order")
	flags.StringVar(&o.sortBy, "sort", "", "Initial file order: name or mtime (default from config)")
	flags.StringVarP(&o.output, "output", "o", "", "Output file (default <folder>/chapters.txt, - for stdout only)")
	flags.BoolVarP(&o.interactive, "interactive", "i", false, "Reorder files on an interactive screen before generating")
	flags.BoolVarP(&o.yes, "yes", "y", false, "Continue without asking when name and file counts differ")
	flags.BoolVarP(&o.deriveNames, "derive-names", "d", false, "Name chapters without a given name after their file")
	flags.BoolVar(&o.transforms.Clean, "clean", false, "Replace _ - . in names with spaces")
	flags.BoolVar(&o.transforms.Capitalize, "capitalize", false, "Title-case chapter names")
	flags.BoolVar(&o.transforms.Number, "number", false, "Prefix chapter names with their position")
}

// request builds a processor.Request from the flags.
func (o *generateOptions) request(cmd *cobra.Command, dir string) (processor.Request, error) {
	req := processor.Request{
		Dir:         dir,
		SortBy:      o.sortBy,
		Offset:      timestamp.ParseOffset(o.offset),
		Output:      o.output,
		DeriveNames: o.deriveNames,
		Transforms:  o.transforms,
	}

	if o.namesFile != "" {
		text, err := readText(o.namesFile, cmd.InOrStdin())
		if err != nil {
			return req, fmt.Errorf("chapter names: %w", err)
		}
		req.Names = chapters.ParseNames(text)
	}
	if o.orderFile != "" {
		text, err := readText(o.orderFile, cmd.InOrStdin())
		if err != nil {
			return req, fmt.Errorf("order: %w", err)
		}
		req.Order = chapters.ParseNames(text)
	}

	stdinFree := o.namesFile != "-" && o.orderFile != "-" && isTerminal(os.Stdin)
	switch {
	case o.yes:
		req.Confirm = func(context.Context, *chapters.MismatchError) bool { return true }
	case stdinFree:
		req.Confirm = confirmMismatch(cmd.InOrStdin(), cmd.ErrOrStderr())
	default:
		req.Confirm = func(_ context.Context, m *chapters.MismatchError) bool {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; pass --yes to continue anyway\n", m)
			return false
		}
	}

	if o.interactive {
		if !stdinFree {
			return req, fmt.Errorf("--interactive needs a terminal on stdin")
		}
		req.Reorder = func(ctx context.Context, files []library.AudioFile) ([]library.AudioFile, error) {
			return reorder.Run(ctx, files)
		}
	}

	return req, nil
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <folder>",
		Short: "Generate a chapter timestamp list for the audio files in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := ctx.newProcessor()
			if err != nil {
				return err
			}
			req, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}

			res, err := proc.Process(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}
