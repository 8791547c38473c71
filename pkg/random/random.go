// Package random provides the randomness used to pick and order passphrase
// words. It is passed explicitly to the composer instead of relying on the
// global generator, so tests can run with a fixed seed.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source supports the two operations the composer needs: a uniform choice in
// [0, n) and a uniform shuffle. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a Source for seed. A non-zero seed yields a reproducible PCG
// sequence; zero seeds a ChaCha8 generator from the operating system.
// The returned Source is not safe for concurrent use.
func New(seed uint64) (Source, error) {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed)), nil //nolint: gosec
	}

	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("could not read random seed: %w", err)
	}

	return rand.New(rand.NewChaCha8(key)), nil //nolint: gosec
}

// Locked serializes access to a Source so it can be shared between
// goroutines, e.g. concurrent HTTP requests.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// IntN implements Source.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.IntN(n)
}

// Shuffle implements Source. swap runs while the lock is held.
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.src.Shuffle(n, swap)
}
