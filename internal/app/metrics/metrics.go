package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fueleu",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fueleu",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fueleu",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	ledgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fueleu",
			Subsystem: "bank",
			Name:      "operations_total",
			Help:      "Bank ledger operations by kind and outcome.",
		},
		[]string{"operation", "result"},
	)

	ledgerAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fueleu",
			Subsystem: "bank",
			Name:      "amount_gco2eq_total",
			Help:      "Total gCO2e banked or applied.",
		},
		[]string{"operation"},
	)

	poolsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fueleu",
			Subsystem: "pool",
			Name:      "creations_total",
			Help:      "Pool creation attempts by outcome.",
		},
		[]string{"result"},
	)

	poolMembers = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fueleu",
			Subsystem: "pool",
			Name:      "members",
			Help:      "Number of members in created pools.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ledgerOperations,
		ledgerAmount,
		poolsCreated,
		poolMembers,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func TrackInFlight() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveRequest records one handled HTTP request. path should be the
// route template, not the raw URL, to keep label cardinality bounded.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	method = strings.ToUpper(method)
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordLedgerOperation counts a bank or apply attempt; amount is added to
// the running total only on success.
func RecordLedgerOperation(operation string, amount float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ledgerOperations.WithLabelValues(operation, result).Inc()
	if err == nil && amount > 0 {
		ledgerAmount.WithLabelValues(operation).Add(amount)
	}
}

func RecordPool(members int, err error) {
	if err != nil {
		poolsCreated.WithLabelValues("error").Inc()
		return
	}
	poolsCreated.WithLabelValues("ok").Inc()
	poolMembers.Observe(float64(members))
}
