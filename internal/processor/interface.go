package processor

import (
	"context"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/timestamp"
)

// Processor runs one chapter-list generation for a folder.
type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
	Files(ctx context.Context, req Request) ([]library.AudioFile, error)
}

// ConfirmFunc decides whether to continue after a chapter count mismatch.
type ConfirmFunc func(ctx context.Context, mismatch *chapters.MismatchError) bool

// ReorderFunc lets the caller rearrange the files before generation.
type ReorderFunc func(ctx context.Context, files []library.AudioFile) ([]library.AudioFile, error)

// Request describes one generation.
type Request struct {
	Dir string
	// SortBy is config.SortByName or config.SortByModTime; empty uses the
	// configured default.
	SortBy string
	// Order lists file names to put first, in order.
	Order []string
	// Names are the user's chapter names. With none given the run fails
	// with chapters.ErrNoNames unless DeriveNames or a transform is set.
	Names []string
	// DeriveNames labels files without a user name by their file name.
	DeriveNames bool
	Transforms  chapters.Options
	Offset      float64
	// Output overrides the configured output path. "-" skips writing.
	Output string

	Confirm ConfirmFunc
	Reorder ReorderFunc
}

// Result is a finished generation.
type Result struct {
	Files      []library.AudioFile
	Entries    []timestamp.Entry
	Text       string
	OutputPath string
	// Mismatch is set when the name count differed and the run continued.
	Mismatch *chapters.MismatchError
}
