package probe

import (
	"context"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

// Resolver reads the playback duration of an audio file in seconds.
type Resolver interface {
	Duration(ctx context.Context, file library.AudioFile) (float64, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, file library.AudioFile) (float64, error)

func (f ResolverFunc) Duration(ctx context.Context, file library.AudioFile) (float64, error) {
	return f(ctx, file)
}
