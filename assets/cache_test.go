package assets

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

// stubLoader serves "value:<url>" for every URL except "bad", counting calls.
// When gate is non-nil each fetch waits for it to close first.
type stubLoader struct {
	calls atomic.Int32
	gate  chan struct{}
}

func (s *stubLoader) load(ctx context.Context, url string) (string, error) {
	s.calls.Add(1)
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if url == "bad" {
		return "", errNotFound
	}
	return "value:" + url, nil
}

func waitReady(t *testing.T, c *Cache[string]) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
}

func TestCacheEmptyIsReady(t *testing.T) {
	stub := &stubLoader{}
	c := NewCache(context.Background(), stub.load)

	assert.True(t, c.IsReady())
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Poll())
}

func TestCacheLoadIsIdempotent(t *testing.T) {
	stub := &stubLoader{gate: make(chan struct{})}
	c := NewCache(context.Background(), stub.load)

	c.Load("a")
	c.Load("a", "b")
	c.Load("b")
	assert.Equal(t, 2, c.Len())

	close(stub.gate)
	waitReady(t, c)

	c.Load("a", "b")
	assert.True(t, c.IsReady())
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestCacheGetReturnsSentinelUntilLoaded(t *testing.T) {
	stub := &stubLoader{gate: make(chan struct{})}
	c := NewCache(context.Background(), stub.load)

	v, ok := c.Get("a")
	assert.False(t, ok, "never requested")
	assert.Empty(t, v)

	c.Load("a")
	_, ok = c.Get("a")
	assert.False(t, ok, "pending")
	assert.False(t, c.IsReady())

	close(stub.gate)
	waitReady(t, c)

	v, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "value:a", v)
}

func TestCacheProgress(t *testing.T) {
	stub := &stubLoader{gate: make(chan struct{})}
	c := NewCache(context.Background(), stub.load)

	c.Load("a", "b", "c")
	loaded, total := c.Progress()
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 3, total)

	close(stub.gate)
	waitReady(t, c)

	loaded, total = c.Progress()
	assert.Equal(t, 3, loaded)
	assert.Equal(t, 3, total)
}

func TestCacheOnReady(t *testing.T) {
	t.Run("fires once when the last pending load completes", func(t *testing.T) {
		stub := &stubLoader{}
		c := NewCache(context.Background(), stub.load)

		var order []string
		c.OnReady(func() { order = append(order, "first") })
		c.OnReady(func() { order = append(order, "second") })

		c.Load("a", "b", "c")
		waitReady(t, c)

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("registering on a ready cache does not fire", func(t *testing.T) {
		stub := &stubLoader{}
		c := NewCache(context.Background(), stub.load)

		c.Load("a")
		waitReady(t, c)

		fired := 0
		c.OnReady(func() { fired++ })
		require.NoError(t, c.Poll())
		assert.Equal(t, 0, fired)
	})

	t.Run("fires again when a later load completes", func(t *testing.T) {
		stub := &stubLoader{}
		c := NewCache(context.Background(), stub.load)

		fired := 0
		c.OnReady(func() { fired++ })

		c.Load("a")
		waitReady(t, c)
		assert.Equal(t, 1, fired)

		c.Load("b")
		assert.False(t, c.IsReady())
		waitReady(t, c)
		assert.Equal(t, 2, fired)
	})
}

func TestCacheFailedLoad(t *testing.T) {
	stub := &stubLoader{}
	c := NewCache(context.Background(), stub.load)

	fired := false
	c.OnReady(func() { fired = true })

	c.Load("good", "bad")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := c.Wait(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, errNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "bad", loadErr.URL)

	assert.False(t, c.IsReady())
	assert.False(t, fired)
	_, ok := c.Get("bad")
	assert.False(t, ok)
}

func TestCachePollDoesNotBlock(t *testing.T) {
	stub := &stubLoader{gate: make(chan struct{})}
	c := NewCache(context.Background(), stub.load)

	c.Load("a")
	assert.NoError(t, c.Poll())
	assert.False(t, c.IsReady())

	close(stub.gate)
	assert.Eventually(t, func() bool {
		return c.Poll() == nil && c.IsReady()
	}, 2*time.Second, time.Millisecond)
}

func TestCachePollReportsFailure(t *testing.T) {
	stub := &stubLoader{}
	c := NewCache(context.Background(), stub.load)

	c.Load("bad")

	var err error
	assert.Eventually(t, func() bool {
		err = c.Poll()
		return err != nil
	}, 2*time.Second, time.Millisecond)
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestCacheWaitHonoursContext(t *testing.T) {
	stub := &stubLoader{gate: make(chan struct{})}
	t.Cleanup(func() { close(stub.gate) })
	c := NewCache(context.Background(), stub.load)

	c.Load("slow")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.Canceled)
}
