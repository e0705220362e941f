// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"contacts/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contacts"

// Collector records authentication and HTTP metrics.
type Collector struct {
	cacheLookups     *prometheus.CounterVec
	cacheWriteFailed prometheus.Counter
	authFailures     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

var _ service.AuthMetrics = (*Collector)(nil)

// NewRegistry returns a registry preloaded with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// RegisterDBStats exports connection pool statistics of db under contacts_db_*.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB) error {
	return reg.Register(collectors.NewDBStatsCollector(db, namespace))
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_cache_lookups_total",
			Help:      "Session cache reads by result.",
		}, []string{"result"}),
		cacheWriteFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_cache_write_failures_total",
			Help:      "Session cache writes that failed and were skipped.",
		}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.cacheLookups,
		c.cacheWriteFailed,
		c.authFailures,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// RecordCacheLookup counts a session cache read.
func (c *Collector) RecordCacheLookup(result service.CacheLookupResult) {
	c.cacheLookups.WithLabelValues(string(result)).Inc()
}

// RecordCacheWriteFailure counts a skipped cache population.
func (c *Collector) RecordCacheWriteFailure() {
	c.cacheWriteFailed.Inc()
}

// RecordAuthFailure counts a rejected request.
func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest counts a served request and observes its latency.
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards every measurement.
type Noop struct{}

func (Noop) RecordCacheLookup(service.CacheLookupResult) {}
func (Noop) RecordCacheWriteFailure()                    {}
func (Noop) RecordAuthFailure(string)                    {}
