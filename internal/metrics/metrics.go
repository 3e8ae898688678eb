// Package metrics exposes Prometheus collectors for tool invocations and
// remote listmonk requests.
package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tool invocation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Collector owns a private registry so tests and multiple servers in one
// process never collide on the default registerer. A nil *Collector is a
// valid no-op.
type Collector struct {
	registry *prometheus.Registry

	toolCalls       *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates and registers all collectors under namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "listmonk_mcp"
	}

	c := &Collector{registry: prometheus.NewRegistry()}

	c.toolCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Total number of tool invocations by tool and outcome",
		},
		[]string{"tool", "outcome"},
	)
	c.toolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "Duration of tool invocations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
	c.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Total number of requests sent to the listmonk API",
		},
		[]string{"method", "route", "status"},
	)
	c.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of requests sent to the listmonk API in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	c.registry.MustRegister(c.toolCalls, c.toolDuration, c.requestsTotal, c.requestDuration)
	return c
}

// ObserveTool records one tool invocation.
func (c *Collector) ObserveTool(tool, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.toolCalls.WithLabelValues(tool, outcome).Inc()
	c.toolDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// ObserveRequest records one remote request. status is 0 when no response
// was received.
func (c *Collector) ObserveRequest(method, path string, status int, d time.Duration) {
	if c == nil {
		return
	}
	route := Route(path)
	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}
	c.requestsTotal.WithLabelValues(method, route, statusLabel).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// Route collapses numeric path segments so ids do not explode label
// cardinality: /api/subscribers/42 becomes /api/subscribers/:id.
func Route(path string) string {
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}
