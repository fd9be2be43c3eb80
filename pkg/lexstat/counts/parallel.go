package counts

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AggregateParallel counts a corpus with workers parallel aggregators, one
// chunk of sentences per worker, and merges the partial tables. The result
// is identical to a single-threaded pass over the same sentences; merging
// is a key-wise sum, so shard order does not matter. workers <= 0 means
// GOMAXPROCS.
func AggregateParallel(ctx context.Context, sentences [][]string, radius, workers int) (*Aggregator, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers <= 1 {
		agg := NewAggregator(radius)
		for _, s := range sentences {
			agg.AddSentence(s)
		}
		return agg, nil
	}

	parts := make([]*Aggregator, workers)
	g, ctx := errgroup.WithContext(ctx)

	chunk := (len(sentences) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(sentences) {
			hi = len(sentences)
		}
		g.Go(func() error {
			part := NewAggregator(radius)
			for _, s := range sentences[lo:hi] {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				part.AddSentence(s)
			}
			parts[w] = part
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := NewAggregator(radius)
	for _, part := range parts {
		agg.Merge(part)
	}
	return agg, nil
}
