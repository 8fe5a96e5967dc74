package treekv

import (
	"sync"
	"time"
)

// Observer provides hooks for monitoring client operations. Implement it
// to track latencies, error rates, or swap contention. Observer methods
// should be fast and non-blocking.
//
// Example implementation:
//
//	type stderrObserver struct{}
//
//	func (stderrObserver) OnRequestStart(method, path string) {
//	    fmt.Fprintf(os.Stderr, "-> %s %s\n", method, path)
//	}
type Observer interface {
	// OnRequestStart is called when an HTTP request starts.
	OnRequestStart(method, path string)

	// OnRequestEnd is called when an HTTP request completes, with the
	// time it took and the error it produced, if any.
	OnRequestEnd(method, path string, duration time.Duration, err error)

	// OnSwapRetry is called each time a Swap loop loses a
	// compare-and-swap race and is about to back off. attempt counts
	// from 1 and delay is the backoff about to be taken.
	OnSwapRetry(key string, attempt int, delay time.Duration)
}

// NoopObserver is the default Observer; it does nothing.
type NoopObserver struct{}

// OnRequestStart does nothing.
func (NoopObserver) OnRequestStart(method, path string) {}

// OnRequestEnd does nothing.
func (NoopObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {}

// OnSwapRetry does nothing.
func (NoopObserver) OnSwapRetry(key string, attempt int, delay time.Duration) {}

// CompositeObserver fans hooks out to multiple observers in order. A
// panicking observer is recovered so it cannot affect the others.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver combines several observers into one.
func NewCompositeObserver(observers ...Observer) *CompositeObserver {
	return &CompositeObserver{observers: observers}
}

// OnRequestStart notifies all observers.
func (c *CompositeObserver) OnRequestStart(method, path string) {
	for _, obs := range c.observers {
		c.guard(func() { obs.OnRequestStart(method, path) })
	}
}

// OnRequestEnd notifies all observers.
func (c *CompositeObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
	for _, obs := range c.observers {
		c.guard(func() { obs.OnRequestEnd(method, path, duration, err) })
	}
}

// OnSwapRetry notifies all observers.
func (c *CompositeObserver) OnSwapRetry(key string, attempt int, delay time.Duration) {
	for _, obs := range c.observers {
		c.guard(func() { obs.OnSwapRetry(key, attempt, delay) })
	}
}

func (c *CompositeObserver) guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// MetricsCollector is a thread-safe in-memory Observer that counts
// requests, errors, latencies, and swap retries. It is primarily intended
// for debugging and tests; production metrics should use
// PrometheusObserver or a custom Observer.
type MetricsCollector struct {
	mu           sync.RWMutex
	requestCount map[string]int64
	errorCount   map[string]int64
	latencies    map[string][]time.Duration
	swapRetries  map[string]int64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencies:    make(map[string][]time.Duration),
		swapRetries:  make(map[string]int64),
	}
}

// OnRequestStart increments the request count for the endpoint.
func (m *MetricsCollector) OnRequestStart(method, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[method+" "+path]++
}

// OnRequestEnd records the request latency and any error.
func (m *MetricsCollector) OnRequestEnd(method, path string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := method + " " + path
	m.latencies[key] = append(m.latencies[key], duration)
	if err != nil {
		m.errorCount[key]++
	}
}

// OnSwapRetry increments the swap retry count for the key.
func (m *MetricsCollector) OnSwapRetry(key string, attempt int, delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.swapRetries[key]++
}

// Snapshot returns a copy of the collected metrics, safe to read without
// further synchronization.
func (m *MetricsCollector) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	requests := make(map[string]int64, len(m.requestCount))
	for k, v := range m.requestCount {
		requests[k] = v
	}
	errors := make(map[string]int64, len(m.errorCount))
	for k, v := range m.errorCount {
		errors[k] = v
	}
	latencies := make(map[string][]time.Duration, len(m.latencies))
	for k, v := range m.latencies {
		latencies[k] = append([]time.Duration(nil), v...)
	}
	swapRetries := make(map[string]int64, len(m.swapRetries))
	for k, v := range m.swapRetries {
		swapRetries[k] = v
	}

	return map[string]any{
		"requests":     requests,
		"errors":       errors,
		"latencies":    latencies,
		"swap_retries": swapRetries,
	}
}
