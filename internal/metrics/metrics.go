// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of every recorder interface in
// the application.
type Collector struct {
	catalogRequests *prometheus.CounterVec
	catalogLatency  *prometheus.HistogramVec
	storeMutations  *prometheus.CounterVec
	storeFailures   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviecat_catalog_requests_total",
			Help: "Catalog requests by endpoint and HTTP status (0 when no response was received)",
		}, []string{"endpoint", "status_code"}),
		catalogLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moviecat_catalog_request_duration_seconds",
			Help:    "Catalog request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		storeMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviecat_store_mutations_total",
			Help: "Persisted store mutations",
		}, []string{"store", "op"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviecat_store_failures_total",
			Help: "Store operations that failed to read or write storage",
		}, []string{"store", "op"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviecat_http_requests_total",
			Help: "Served HTTP requests by method and status",
		}, []string{"method", "status_code"}),
	}

	reg.MustRegister(
		c.catalogRequests,
		c.catalogLatency,
		c.storeMutations,
		c.storeFailures,
		c.httpRequests,
	)

	return c
}

// RecordCatalogRequest records one catalog round trip
func (c *Collector) RecordCatalogRequest(endpoint string, statusCode int, duration time.Duration) {
	c.catalogRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	c.catalogLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (c *Collector) RecordStoreMutation(store, op string) {
	c.storeMutations.WithLabelValues(store, op).Inc()
}

func (c *Collector) RecordStoreFailure(store, op string) {
	c.storeFailures.WithLabelValues(store, op).Inc()
}

func (c *Collector) RecordHTTPRequest(method string, statusCode int) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
