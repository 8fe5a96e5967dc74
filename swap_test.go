package treekv

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incrementFunc(current *string) (string, error) {
	n := 0
	if current != nil && *current != "" {
		var err error
		if n, err = strconv.Atoi(*current); err != nil {
			return "", err
		}
	}
	return strconv.Itoa(n + 1), nil
}

func TestSwap_Sequential(t *testing.T) {
	store := newMockStore()
	store.seed("/counter", "0")
	client := newTestClient(t, store.handler())
	ctx := context.Background()

	var sleeps int
	client.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}

	for i := 1; i <= 5; i++ {
		final, err := client.Swap(ctx, StringKey("counter"), incrementFunc)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), final)
	}

	current, _ := store.currentValue("/counter")
	assert.Equal(t, "5", current)
	assert.Zero(t, sleeps, "uncontended swaps never back off")
}

func TestSwap_RetriesOnConflict(t *testing.T) {
	store := newMockStore()
	store.seed("/counter", "0")

	// Interfere with the first few writes: bump the counter between the
	// client's read and its conditional write, invalidating the index it
	// read.
	conflicts := 3
	inner := store.handler()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && conflicts > 0 {
			conflicts--
			current, _ := store.currentValue("/counter")
			n, _ := strconv.Atoi(current)
			store.seed("/counter", strconv.Itoa(n+1))
		}
		inner.ServeHTTP(w, r)
	})

	client := newTestClient(t, handler)

	var sleeps int
	var delays []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		delays = append(delays, d)
		return nil
	}

	final, err := client.Swap(context.Background(), StringKey("counter"), incrementFunc)
	require.NoError(t, err)
	assert.Equal(t, "4", final, "the applied write builds on the freshest read")
	assert.Equal(t, 3, sleeps, "one backoff per lost race")
	for _, d := range delays {
		assert.Equal(t, client.config.SwapRetryDelay, d)
	}

	current, _ := store.currentValue("/counter")
	assert.Equal(t, "4", current)
}

func TestSwap_ObserverSeesRetries(t *testing.T) {
	store := newMockStore()
	store.seed("/counter", "0")

	conflicts := 2
	inner := store.handler()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && conflicts > 0 {
			conflicts--
			store.seed("/counter", "99")
		}
		inner.ServeHTTP(w, r)
	})

	srv := newTestServer(t, handler)
	metrics := NewMetricsCollector()
	client, err := NewClient(DefaultConfig().
		WithBaseURL(srv).
		WithObserver(metrics))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	client.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	_, err = client.Swap(context.Background(), StringKey("counter"), incrementFunc)
	require.NoError(t, err)

	snapshot := metrics.Snapshot()
	retries := snapshot["swap_retries"].(map[string]int64)
	assert.Equal(t, int64(2), retries["counter"])
}

func TestSwap_MissingKey(t *testing.T) {
	store := newMockStore()
	client := newTestClient(t, store.handler())

	_, err := client.Swap(context.Background(), StringKey("absent"), incrementFunc)
	require.Error(t, err)
	assert.True(t, IsKeyNotFound(err), "the key must exist before it can be swapped")
}

func TestSwap_TransformError(t *testing.T) {
	store := newMockStore()
	store.seed("/counter", "not a number")
	client := newTestClient(t, store.handler())

	_, err := client.Swap(context.Background(), StringKey("counter"), incrementFunc)
	require.Error(t, err)

	current, _ := store.currentValue("/counter")
	assert.Equal(t, "not a number", current, "a failed transform writes nothing")
}

func TestSwap_ContextCanceledDuringBackoff(t *testing.T) {
	store := newMockStore()
	store.seed("/counter", "0")

	// Every write loses, so the loop would spin forever without the
	// context deadline.
	inner := store.handler()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			current, _ := store.currentValue("/counter")
			n, _ := strconv.Atoi(current)
			store.seed("/counter", strconv.Itoa(n+1))
		}
		inner.ServeHTTP(w, r)
	})

	client := newTestClient(t, handler)
	ctx, cancel := context.WithCancel(context.Background())
	client.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := client.Swap(ctx, StringKey("counter"), incrementFunc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSwap_Closed(t *testing.T) {
	store := newMockStore()
	client := newTestClient(t, store.handler())
	require.NoError(t, client.Close())

	_, err := client.Swap(context.Background(), StringKey("k"), incrementFunc)
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), 0), "non-positive delays return immediately")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sleepContext(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)

	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
