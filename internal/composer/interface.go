package composer

import (
	"context"
	"correcthorse/pkg/domain"
	"iter"
)

// Composer turns composition parameters into passphrases.
//
//go:generate mockgen -package mockcomposer -source=interface.go -destination=mock/mockcomposer.go *
type Composer interface {
	// Generate returns a lazy sequence of params.Count passphrases. A failure
	// is delivered as the final element with an empty passphrase; nothing is
	// produced after it. The sequence is single pass.
	Generate(ctx context.Context, params domain.Params) iter.Seq2[domain.Passphrase, error]
	// Batch generates every passphrase up front. It fails without partial
	// results.
	Batch(ctx context.Context, params domain.Params) ([]domain.Passphrase, error)
}
