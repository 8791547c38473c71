// Package composer builds passphrases by drawing random words from a word pool
// until both the minimum word count and the minimum character count are met.
package composer

import (
	"context"
	"correcthorse/internal/config"
	"correcthorse/pkg/domain"
	"correcthorse/pkg/logger"
	"correcthorse/pkg/metrics"
	"correcthorse/pkg/random"
	"correcthorse/pkg/serrors"
	"correcthorse/pkg/wordlist"
	"fmt"
	"iter"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "correcthorse/internal/composer"

// drawsPerCtxCheck is how many words are drawn between two context checks.
const drawsPerCtxCheck = 1024

// Options configure a Composer.
type Options struct {
	// DefaultLists are loaded when the parameters name no list.
	DefaultLists []string
	// MeterProvider receives generation metrics. Nil disables them.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultLists: cfg.Defaults.Lists,
	}
}

// composer is the concrete implementation of the Composer interface.
type composer struct {
	options Options
	// loader provides the pool, and is only asked when userwords fall short.
	loader wordlist.Loader
	// rand picks and orders words.
	rand random.Source

	generated    metric.Int64Counter
	poolSize     metric.Int64Histogram
	loadDuration metric.Float64Histogram
}

// New creates a Composer drawing words from lists served by loader, using
// src for every random decision.
func New(loader wordlist.Loader, src random.Source, options Options) (Composer, error) {
	mp := options.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	c := &composer{
		options: options,
		loader:  loader,
		rand:    src,
	}

	var err error
	c.generated, err = meter.Int64Counter("correcthorse.passphrases.generated",
		metric.WithDescription("Number of passphrases generated"))
	if err != nil {
		return nil, fmt.Errorf("could not create generated counter: %w", err)
	}
	c.poolSize, err = meter.Int64Histogram("correcthorse.pool.size",
		metric.WithDescription("Number of words in loaded pools"),
		metric.WithUnit("{word}"))
	if err != nil {
		return nil, fmt.Errorf("could not create pool size histogram: %w", err)
	}
	c.loadDuration, err = meter.Float64Histogram("correcthorse.pool.load.duration",
		metric.WithDescription("Time spent loading word pools"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create pool load histogram: %w", err)
	}

	return c, nil
}

// Generate implements Composer.
//
// The pool is loaded at most once, before the first passphrase, and only when
// params.UserWords alone miss one of the minimums. Negative parameters are
// rejected with serrors.ErrBadRequest; a pool that cannot satisfy the minimums
// fails with serrors.ErrEmptyPool; loader errors are passed through.
func (c *composer) Generate(ctx context.Context, params domain.Params) iter.Seq2[domain.Passphrase, error] {
	return func(yield func(domain.Passphrase, error) bool) {
		if err := params.Validate(); err != nil {
			yield("", serrors.Wrap(serrors.ErrBadRequest, err, "invalid parameters"))

			return
		}
		if params.Count == 0 {
			return
		}

		chars := domain.TotalLen(params.UserWords)

		var pool domain.Pool
		if !params.Satisfied(len(params.UserWords), chars) {
			var err error
			pool, err = c.loadPool(ctx, params)
			if err != nil {
				yield("", err)

				return
			}
		}

		attrs := metric.WithAttributes(attribute.Bool("camelcase", params.CamelCase))
		for range params.Count {
			if err := ctx.Err(); err != nil {
				yield("", err)

				return
			}

			phrase, err := c.compose(ctx, params, pool, chars)
			if err != nil {
				yield("", err)

				return
			}
			c.generated.Add(ctx, 1, attrs)

			if !yield(phrase, nil) {
				return
			}
		}
	}
}

// Batch implements Composer.
func (c *composer) Batch(ctx context.Context, params domain.Params) ([]domain.Passphrase, error) {
	out := make([]domain.Passphrase, 0, max(params.Count, 0))
	for phrase, err := range c.Generate(ctx, params) {
		if err != nil {
			return nil, err
		}
		out = append(out, phrase)
	}

	return out, nil
}

// loadPool loads every list named by params (or the defaults) and makes sure
// drawing from it can reach params' minimums.
func (c *composer) loadPool(ctx context.Context, params domain.Params) (domain.Pool, error) {
	lists := params.Lists
	if len(lists) == 0 {
		lists = c.options.DefaultLists
	}
	if len(lists) == 0 {
		lists = []string{domain.DefaultList}
	}

	start := time.Now()
	pool, err := wordlist.LoadAll(ctx, c.loader, lists)
	if err != nil {
		return nil, fmt.Errorf("could not load word pool: %w", err)
	}
	c.loadDuration.Record(ctx, time.Since(start).Seconds())
	c.poolSize.Record(ctx, int64(len(pool)))

	logger.Debug(ctx, "word pool loaded", zap.Strings("lists", lists), zap.Int("words", len(pool)))

	if len(pool) == 0 {
		return nil, serrors.With(serrors.ErrEmptyPool, "no words found in word lists %v", lists)
	}

	// words of length zero never raise the character count
	if domain.TotalLen(params.UserWords) < params.CharsMin && domain.TotalLen(pool) == 0 {
		return nil, serrors.With(serrors.ErrEmptyPool, "word lists %v contain only empty words", lists)
	}

	return pool, nil
}

// compose builds one passphrase. pool may only be empty when params are
// already satisfied by the userwords, whose summed length is chars. The draw
// loop stops with ctx's error once ctx is done.
func (c *composer) compose(ctx context.Context, params domain.Params, pool domain.Pool, chars int) (domain.Passphrase, error) {
	words := make([]domain.Word, len(params.UserWords), len(params.UserWords)+min(params.WordsMin, 64))
	copy(words, params.UserWords)

	for drawn := 0; !params.Satisfied(len(words), chars); drawn++ {
		if drawn%drawsPerCtxCheck == drawsPerCtxCheck-1 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}

		w := pool[c.rand.IntN(len(pool))]
		words = append(words, w)
		chars += w.Len()
	}

	if params.CamelCase {
		for i, w := range words {
			words[i] = w.Capitalize()
		}
	}

	c.rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	return domain.JoinWords(words, params.Sep), nil
}
