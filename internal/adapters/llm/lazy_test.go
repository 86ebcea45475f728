package llm_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/llm"
)

func TestLazy_BuildsOnceConcurrently(t *testing.T) {
	var calls int
	var mu sync.Mutex
	l := llm.NewLazy(func() (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return 42, nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Get()
			require.NoError(t, err)
			require.Equal(t, 42, v)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, calls)
}

func TestLazy_CachesError(t *testing.T) {
	errMissing := errors.New("no key")
	var calls int
	l := llm.NewLazy(func() (string, error) {
		calls++
		return "", errMissing
	})

	for range 3 {
		_, err := l.Get()
		require.ErrorIs(t, err, errMissing)
	}
	require.Equal(t, 1, calls)
}
