package cache

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCacheConcurrentFirstQuery(t *testing.T) {
	const goroutines = 64

	for _, tc := range []struct {
		name string
		s    storage
	}{
		{"word", newWordStorage()},
		{"split", newSplitStorage()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			detect, calls := countingDetector(0b101)

			var (
				start   sync.WaitGroup
				g       errgroup.Group
				results [goroutines][3]bool
			)
			start.Add(1)
			for i := 0; i < goroutines; i++ {
				g.Go(func() error {
					start.Wait()
					runtime.Gosched()
					results[i] = [3]bool{
						lazyTest(tc.s, 0, detect),
						lazyTest(tc.s, 1, detect),
						lazyTest(tc.s, 2, detect),
					}
					return nil
				})
			}
			start.Done()
			require.NoError(t, g.Wait())

			for i, r := range results {
				assert.Equal(t, [3]bool{true, false, true}, r, "goroutine %d", i)
			}
			assert.False(t, tc.s.uninitialized())
			n := calls.Load()
			assert.GreaterOrEqual(t, n, int64(1))
			assert.LessOrEqual(t, n, int64(goroutines))
		})
	}
}

func TestCacheConcurrentReaders(t *testing.T) {
	c := New()
	detect, calls := countingDetector(1<<62 | 1)
	c.Test(0, detect)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				if !c.Test(62, detect) || c.Test(61, detect) {
					t.Error("inconsistent read")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, calls.Load())
}
