package probe

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
)

// Batch resolves the durations of files concurrently, at most limit at a
// time (runtime.NumCPU when limit <= 0). Results are in file order. The
// first failure cancels the remaining probes and is returned.
func Batch(ctx context.Context, r Resolver, files []library.AudioFile, limit int) ([]float64, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	durations := make([]float64, len(files))
	for i, file := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			d, err := r.Duration(ctx, file)
			if err != nil {
				return err
			}
			durations[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}
