package loader

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBatch struct {
	mu    sync.Mutex
	calls [][]int
	err   error
}

func (r *recordingBatch) fn(_ context.Context, keys []int) (map[int]string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]int(nil), keys...))
	r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	result := make(map[int]string, len(keys))
	for _, key := range keys {
		if key < 0 {
			continue
		}
		result[key] = string(rune('a' + key))
	}

	return result, nil
}

func TestLoader_CoalescesKeysIntoOneBatch(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)
	ctx := context.Background()

	t1 := l.Load(ctx, 1)
	t2 := l.Load(ctx, 2)
	t3 := l.Load(ctx, 1)

	v2, err := t2()
	require.NoError(t, err)
	v1, err := t1()
	require.NoError(t, err)
	v3, err := t3()
	require.NoError(t, err)

	assert.Equal(t, "b", v1)
	assert.Equal(t, "c", v2)
	assert.Equal(t, v1, v3)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []int{1, 2}, rec.calls[0])
}

func TestLoader_MissingKeyResolvesToZeroValue(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)

	value, err := l.Load(context.Background(), -1)()

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestLoader_CachesAcrossWindows(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)
	ctx := context.Background()

	_, err := l.Load(ctx, 1)()
	require.NoError(t, err)

	value, err := l.Load(ctx, 1)()
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = l.Load(ctx, 3)()
	require.NoError(t, err)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, []int{3}, rec.calls[1])
}

func TestLoader_ErrorDeliveredToEveryWaiter(t *testing.T) {
	rec := &recordingBatch{err: errors.New("connection refused")}
	l := New(rec.fn, WithName("users"))
	ctx := context.Background()

	t1 := l.Load(ctx, 1)
	t2 := l.Load(ctx, 2)

	_, err1 := t1()
	_, err2 := t2()

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Contains(t, err1.Error(), "users: batch load failed")
	assert.Contains(t, err2.Error(), "connection refused")
	assert.Len(t, rec.calls, 1)
}

func TestLoader_PanicBecomesError(t *testing.T) {
	l := New(func(context.Context, []int) (map[int]string, error) {
		panic("boom")
	})

	_, err := l.Load(context.Background(), 1)()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestLoader_MaxBatchSplitsWindow(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn, WithMaxBatch(2))
	ctx := context.Background()

	thunk := l.LoadMany(ctx, []int{1, 2, 3, 4, 5})
	values, err := thunk()

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, values)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, rec.calls)
}

func TestLoader_LoadManyPreservesOrderAndDeduplicates(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)

	values, err := l.LoadMany(context.Background(), []int{3, 1, 3, -1})()

	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "d", ""}, values)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []int{3, 1, -1}, rec.calls[0])
}

func TestLoader_PrimeSkipsFetch(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)

	l.Prime(7, "primed")
	l.Prime(7, "ignored")

	value, err := l.Load(context.Background(), 7)()

	require.NoError(t, err)
	assert.Equal(t, "primed", value)
	assert.Empty(t, rec.calls)
}

func TestLoader_ClearForcesRefetch(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)
	ctx := context.Background()

	_, err := l.Load(ctx, 1)()
	require.NoError(t, err)

	l.Clear(1)

	_, err = l.Load(ctx, 1)()
	require.NoError(t, err)
	assert.Len(t, rec.calls, 2)
}

func TestLoader_ConcurrentForcingDispatchesOnce(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)
	ctx := context.Background()

	thunks := make([]Thunk[string], 0, 20)
	for i := 0; i < 20; i++ {
		thunks = append(thunks, l.Load(ctx, i%5))
	}

	var wg sync.WaitGroup
	for _, thunk := range thunks {
		wg.Add(1)
		go func(thunk Thunk[string]) {
			defer wg.Done()
			_, err := thunk()
			assert.NoError(t, err)
		}(thunk)
	}
	wg.Wait()

	require.Len(t, rec.calls, 1)
	assert.Len(t, rec.calls[0], 5)
}

func TestLoader_PrefetchJoinsNextWindow(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn)
	ctx := context.Background()

	l.Prime(1, "primed")
	l.Prefetch(ctx, []int{1, 2, 3, 2})

	values, err := l.LoadMany(ctx, []int{3, 4})()

	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, values)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []int{2, 3, 4}, rec.calls[0])

	cached, err := l.Load(ctx, 2)()
	require.NoError(t, err)
	assert.Equal(t, "c", cached)
	assert.Len(t, rec.calls, 1)
}

func TestLoader_FlushDispatchesEveryOpenWindow(t *testing.T) {
	rec := &recordingBatch{}
	l := New(rec.fn, WithMaxBatch(2))
	ctx := context.Background()

	thunks := []Thunk[string]{l.Load(ctx, 1), l.Load(ctx, 2), l.Load(ctx, 3)}

	l.Flush()
	require.Len(t, rec.calls, 2)
	assert.ElementsMatch(t, [][]int{{1, 2}, {3}}, rec.calls)

	for _, thunk := range thunks {
		_, err := thunk()
		require.NoError(t, err)
	}
	l.Flush()
	assert.Len(t, rec.calls, 2)
}
