package treekv

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusObserver is an Observer exporting request and swap metrics to
// Prometheus. Metrics are labeled by HTTP method and outcome only; key
// paths are deliberately kept out of labels to bound cardinality.
//
// Example:
//
//	obs := treekv.NewPrometheusObserver(prometheus.DefaultRegisterer)
//	config := treekv.DefaultConfig().WithObserver(obs)
type PrometheusObserver struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	swapRetries prometheus.Counter
}

// NewPrometheusObserver creates an observer registering its collectors on
// reg. A nil registerer falls back to the default one. Creating two
// observers on the same registerer panics on duplicate registration, as
// usual for promauto.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusObserver{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treekv_client_requests_total",
			Help: "Total number of store requests",
		}, []string{"method", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treekv_client_request_duration_seconds",
			Help:    "Store request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method"}),
		swapRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "treekv_client_swap_retries_total",
			Help: "Total number of swap attempts retried after a lost compare-and-swap race",
		}),
	}
}

// OnRequestStart does nothing; requests are counted on completion so the
// outcome label is known.
func (o *PrometheusObserver) OnRequestStart(method, path string) {}

// OnRequestEnd records the request count and latency.
func (o *PrometheusObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	o.requests.WithLabelValues(method, outcome).Inc()
	o.duration.WithLabelValues(method).Observe(duration.Seconds())
}

// OnSwapRetry counts a lost compare-and-swap race.
func (o *PrometheusObserver) OnSwapRetry(key string, attempt int, delay time.Duration) {
	o.swapRetries.Inc()
}
