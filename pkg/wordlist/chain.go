package wordlist

import (
	"context"
	"correcthorse/pkg/domain"
	"correcthorse/pkg/serrors"
	"errors"
)

// Chain tries each loader in order and returns the first list found. Only a
// not-found error moves on to the next loader; any other error is returned
// as is.
type Chain []Loader

// Ensure Chain implements Loader.
var _ Loader = Chain(nil)

// Load implements Loader.
func (c Chain) Load(ctx context.Context, name string) ([]domain.Word, error) {
	var lastErr error = serrors.With(serrors.ErrNotFound, "word list %q not found", name)
	for _, l := range c {
		words, err := l.Load(ctx, name)
		if err == nil {
			return words, nil
		}
		if !errors.Is(err, serrors.ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
