package treekv

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Client talks to a treekv store. It holds no mutable shared state beyond
// the connection pool; every operation is a self-contained request, so a
// single Client is safe for concurrent use by any number of goroutines.
// Serialization of conflicting writes is delegated to the store through
// the compare-and-swap primitives.
//
// Example:
//
//	client, err := treekv.NewClient(treekv.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//
//	if _, err := client.Set(ctx, treekv.StringKey("greeting"), "hello", nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := client.Get(ctx, treekv.StringKey("greeting"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(value) // "hello"
type Client struct {
	transport *transport
	config    *Config

	// sleep pauses between Swap attempts; swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a client for the store at config.BaseURL. If config is
// nil, DefaultConfig is used.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tr, err := newTransport(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: tr,
		config:    config,
		sleep:     sleepContext,
	}, nil
}

// Get reads a key and returns its projected value: nil when the key does
// not exist, a string for a leaf, or a nested map for a directory listing.
// A missing key is not an error; a leaf holding the empty string returns
// "" and is distinguishable from nil.
func (c *Client) Get(ctx context.Context, key Key, opts *GetOptions) (any, error) {
	env, err := c.GetNode(ctx, key, opts)
	if err != nil {
		if IsKeyNotFound(err) {
			return nil, nil
		}
		var he *HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return Project(env.Node), nil
}

// GetNode reads a key and returns the raw response envelope. Unlike Get,
// nothing is absorbed: a missing key surfaces as a StoreError with
// ErrCodeKeyNotFound.
func (c *Client) GetNode(ctx context.Context, key Key, opts *GetOptions) (*Envelope, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	raw, err := c.transport.do(ctx, http.MethodGet, keysPath(key.Encode()), opts.values(), opts.timeout())
	if err != nil {
		return nil, err
	}
	return parseEnvelope(raw)
}

// Set writes a leaf value. Options can attach a TTL or turn the write into
// a conditional one.
func (c *Client) Set(ctx context.Context, key Key, value string, opts *SetOptions) (*Envelope, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	params := opts.values()
	params.Set("value", value)
	return c.put(ctx, key, params, opts.timeout())
}

// Create adds a new entry under the directory at dir, letting the store
// assign an in-order name. The returned envelope's node key is the
// directory path followed by a store-generated numeric suffix.
func (c *Client) Create(ctx context.Context, dir Key, value string, opts *CreateOptions) (*Envelope, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	params := opts.values()
	params.Set("value", value)
	raw, err := c.transport.do(ctx, http.MethodPost, keysPath(dir.Encode()), params, opts.timeout())
	if err != nil {
		return nil, err
	}
	return parseEnvelope(raw)
}

// Delete removes a key. Deleting a directory requires Dir or Recursive in
// the options.
func (c *Client) Delete(ctx context.Context, key Key, opts *DeleteOptions) (*Envelope, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	raw, err := c.transport.do(ctx, http.MethodDelete, keysPath(key.Encode()), opts.values(), opts.timeout())
	if err != nil {
		return nil, err
	}
	return parseEnvelope(raw)
}

// put issues a conditional or unconditional PUT and parses the envelope.
func (c *Client) put(ctx context.Context, key Key, params url.Values, timeout time.Duration) (*Envelope, error) {
	raw, err := c.transport.do(ctx, http.MethodPut, keysPath(key.Encode()), params, timeout)
	if err != nil {
		return nil, err
	}
	return parseEnvelope(raw)
}

// Close closes the client and releases its connections. Close is safe to
// call multiple times; operations after Close fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.transport.close()
}

func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// sleepContext blocks for d or until ctx is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
