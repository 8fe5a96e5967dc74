// Package treekv provides a Go client for the treekv hierarchical,
// versioned key-value store. Keys form a filesystem-like tree addressed
// over HTTP; every write is versioned with store-assigned indices, which
// the client exposes as optimistic-concurrency primitives.
//
// # Basic usage
//
//	client, err := treekv.NewClient(treekv.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//
//	// Write and read back a leaf.
//	if _, err := client.Set(ctx, treekv.StringKey("config/debug"), "true", nil); err != nil {
//	    log.Fatal(err)
//	}
//	value, err := client.Get(ctx, treekv.StringKey("config/debug"), nil)
//
// Reads return projected values: nil for a missing key, a string for a
// leaf, and a map from child name to projected value for a directory.
// Listing recursively nests those maps arbitrarily deep:
//
//	tree, err := client.Get(ctx, treekv.RootKey(), &treekv.GetOptions{Recursive: true})
//
// # Optimistic concurrency
//
// CompareAndSwap and CompareAndSwapIndex are conditional writes the store
// serializes. Losing a race is an expected outcome reported as a false
// result, not an error:
//
//	env, swapped, err := client.CompareAndSwap(ctx, key, "old", "new", nil)
//
// Swap builds a lock-free read-modify-write loop on top of them, retrying
// with a fixed backoff until the update lands:
//
//	final, err := client.Swap(ctx, key, func(current *string) (string, error) {
//	    return computeNext(current), nil
//	})
//
// # Scope
//
// The client intentionally omits watches, leader discovery, cluster
// membership, and authentication. Every operation is a blocking,
// context-aware network call; callers pick their own concurrency model
// for issuing requests in parallel.
package treekv
