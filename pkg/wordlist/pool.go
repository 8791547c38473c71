package wordlist

import (
	"context"
	"correcthorse/pkg/domain"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// LoadAll loads every named list concurrently and concatenates them into one
// pool in the order the names were given. The first failure cancels the
// remaining loads and is returned.
func LoadAll(ctx context.Context, loader Loader, names []string) (domain.Pool, error) {
	lists := make([][]domain.Word, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			words, err := loader.Load(gctx, name)
			if err != nil {
				return fmt.Errorf("could not load word list %q: %w", name, err)
			}
			lists[i] = words

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	size := 0
	for _, l := range lists {
		size += len(l)
	}
	pool := make(domain.Pool, 0, size)
	for _, l := range lists {
		pool = append(pool, l...)
	}

	return pool, nil
}
