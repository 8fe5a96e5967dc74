package treekv

import (
	"context"
)

// SwapFunc computes the next value of a key from its current one. current
// is nil when the node carries no value. Returning an error aborts the
// surrounding Swap.
type SwapFunc func(current *string) (string, error)

// Swap atomically updates the value of key by applying fn in a retrying
// read-modify-write loop: it fetches the current node, computes the next
// value, and attempts a compare-and-swap constrained on the node's
// ModifiedIndex. A lost race pauses for the configured SwapRetryDelay and
// starts over with a fresh read; the loop only ends on success, on a hard
// error, or when ctx is canceled. On success the value that was written is
// returned.
//
// This is lock-free single-key optimistic concurrency: the store, not the
// client, arbitrates between racing writers, and the loop holds no lock
// during its backoff, so other callers keep progressing. There is no
// attempt cap: under sustained contention the loop runs until ctx
// expires, so callers wanting an upper bound should attach a deadline.
//
// The key must exist; swapping a missing key fails with the store's
// key-not-found error.
//
// Example:
//
//	final, err := client.Swap(ctx, treekv.StringKey("counter"),
//	    func(current *string) (string, error) {
//	        n := 0
//	        if current != nil {
//	            var err error
//	            if n, err = strconv.Atoi(*current); err != nil {
//	                return "", err
//	            }
//	        }
//	        return strconv.Itoa(n + 1), nil
//	    })
func (c *Client) Swap(ctx context.Context, key Key, fn SwapFunc) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}

	encoded := key.Encode()
	for attempt := 1; ; attempt++ {
		env, err := c.GetNode(ctx, key, nil)
		if err != nil {
			return "", err
		}

		next, err := fn(env.Node.Value)
		if err != nil {
			return "", err
		}

		_, swapped, err := c.CompareAndSwapIndex(ctx, key, env.Node.ModifiedIndex, next, nil)
		if err != nil {
			return "", err
		}
		if swapped {
			return next, nil
		}

		delay := c.config.SwapRetryDelay
		if c.config.Observer != nil {
			c.config.Observer.OnSwapRetry(encoded, attempt, delay)
		}
		if err := c.sleep(ctx, delay); err != nil {
			return "", err
		}
	}
}
