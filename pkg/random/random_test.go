package random_test

import (
	"correcthorse/pkg/random"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, src random.Source, n int) []int {
	t.Helper()

	out := make([]int, n)
	for i := range out {
		out[i] = src.IntN(1000)
	}

	return out
}

func TestNew_SeedIsReproducible(t *testing.T) {
	a, err := random.New(42)
	require.NoError(t, err)
	b, err := random.New(42)
	require.NoError(t, err)

	require.Equal(t, draw(t, a, 32), draw(t, b, 32))
}

func TestNew_DifferentSeedsDiffer(t *testing.T) {
	a, err := random.New(1)
	require.NoError(t, err)
	b, err := random.New(2)
	require.NoError(t, err)

	require.NotEqual(t, draw(t, a, 32), draw(t, b, 32))
}

func TestNew_ZeroSeedUsesEntropy(t *testing.T) {
	src, err := random.New(0)
	require.NoError(t, err)

	for _, v := range draw(t, src, 100) {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 1000)
	}
}

func TestLocked_ConcurrentUse(t *testing.T) {
	src, err := random.New(7)
	require.NoError(t, err)
	locked := random.NewLocked(src)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := []int{1, 2, 3, 4, 5}
			for range 100 {
				_ = locked.IntN(10)
				locked.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
			}
		}()
	}
	wg.Wait()
}
