package treekv

import (
	"time"
)

// Config holds the configuration for a treekv client. All fields are
// optional and have sensible defaults. The configuration is read once by
// NewClient and never mutated afterwards.
//
// Configuration can be built using the fluent builder pattern:
//
//	config := treekv.DefaultConfig().
//	    WithBaseURL("https://store.example.com:4001").
//	    WithTimeout(10 * time.Second).
//	    WithSwapRetryDelay(50 * time.Millisecond)
//
//	client, err := treekv.NewClient(config)
type Config struct {
	// BaseURL is the base endpoint of the store, without the /v2 suffix.
	// Default: "http://localhost:4001"
	BaseURL string

	// Timeout bounds each request: connection establishment and reading
	// the response share the same deadline. Individual operations may
	// override it per call. Default: 5s
	Timeout time.Duration

	// SwapRetryDelay is the pause between attempts of the Swap loop
	// after a lost compare-and-swap race. Default: 100ms
	SwapRetryDelay time.Duration

	// TransportConfig holds HTTP connection pooling settings.
	TransportConfig TransportConfig

	// Headers are custom headers added to every request, e.g.
	// authentication tokens or correlation IDs.
	Headers map[string]string

	// Observer receives hooks for monitoring operations.
	// If nil, NoopObserver is used.
	Observer Observer
}

// TransportConfig holds HTTP transport configuration for connection pooling.
type TransportConfig struct {
	// MaxIdleConns caps idle connections across all hosts. Zero means no
	// limit. Default: 100
	MaxIdleConns int

	// MaxConnsPerHost caps connections per host, counting dialing,
	// active, and idle states. Default: 10
	MaxConnsPerHost int

	// IdleConnTimeout is how long an idle connection is kept before
	// closing itself. Default: 90s
	IdleConnTimeout time.Duration
}

// DefaultConfig returns a Config with defaults suitable for a local store.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://localhost:4001",
		Timeout:        5 * time.Second,
		SwapRetryDelay: 100 * time.Millisecond,
		TransportConfig: TransportConfig{
			MaxIdleConns:    100,
			MaxConnsPerHost: 10,
			IdleConnTimeout: 90 * time.Second,
		},
		Headers:  make(map[string]string),
		Observer: &NoopObserver{},
	}
}

// WithBaseURL sets the store endpoint. The URL should include the scheme
// but not the /v2 API prefix.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithSwapRetryDelay sets the pause between Swap attempts after a lost
// compare-and-swap race.
func (c *Config) WithSwapRetryDelay(delay time.Duration) *Config {
	c.SwapRetryDelay = delay
	return c
}

// WithHeader adds a custom header sent with every request.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithObserver sets a custom observer for monitoring client operations.
func (c *Config) WithObserver(observer Observer) *Config {
	c.Observer = observer
	return c
}

// Validate validates the configuration and fills defaults for missing
// values. It is called automatically by NewClient.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.SwapRetryDelay <= 0 {
		c.SwapRetryDelay = 100 * time.Millisecond
	}
	if c.TransportConfig.MaxIdleConns <= 0 {
		c.TransportConfig.MaxIdleConns = 100
	}
	if c.TransportConfig.MaxConnsPerHost <= 0 {
		c.TransportConfig.MaxConnsPerHost = 10
	}
	if c.TransportConfig.IdleConnTimeout <= 0 {
		c.TransportConfig.IdleConnTimeout = 90 * time.Second
	}
	if c.Observer == nil {
		c.Observer = &NoopObserver{}
	}
	return nil
}
