package treekv

import (
	"context"
	"strconv"
)

// CompareAndSwap conditionally replaces the value of key with value,
// constrained on the current value equaling prevValue. Options can add
// prevIndex and prevExist constraints.
//
// The boolean result reports whether the swap was applied. A lost race,
// meaning the store rejected the condition with ErrCodeCompareFailed,
// returns (nil, false, nil): losing is an expected outcome, not an error.
// Any other failure propagates.
//
// The operation is a single conditional PUT serialized by the store, so it
// is safe to issue concurrently from any number of callers against the
// same key.
func (c *Client) CompareAndSwap(ctx context.Context, key Key, prevValue, value string, opts *CASOptions) (*Envelope, bool, error) {
	if err := c.checkClosed(); err != nil {
		return nil, false, err
	}
	params := opts.values()
	params.Set("value", value)
	params.Set("prevValue", prevValue)
	return c.finishCAS(c.put(ctx, key, params, opts.timeout()))
}

// CompareAndSwapIndex conditionally replaces the value of key with value,
// constrained on the current ModifiedIndex equaling prevIndex. Options can
// add prevValue and prevExist constraints. The result contract matches
// CompareAndSwap: a lost race is (nil, false, nil), anything else
// propagates.
func (c *Client) CompareAndSwapIndex(ctx context.Context, key Key, prevIndex uint64, value string, opts *CASOptions) (*Envelope, bool, error) {
	if err := c.checkClosed(); err != nil {
		return nil, false, err
	}
	params := opts.values()
	params.Set("value", value)
	params.Set("prevIndex", strconv.FormatUint(prevIndex, 10))
	return c.finishCAS(c.put(ctx, key, params, opts.timeout()))
}

// finishCAS maps the compare-failure store code to the soft-failure
// result.
func (c *Client) finishCAS(env *Envelope, err error) (*Envelope, bool, error) {
	if err != nil {
		if code, ok := StoreErrorCode(err); ok && code == ErrCodeCompareFailed {
			return nil, false, nil
		}
		return nil, false, err
	}
	return env, true, nil
}
