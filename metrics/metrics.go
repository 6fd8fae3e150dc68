// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "quickpoll",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickpoll",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickpoll",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	pollsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quickpoll",
			Subsystem: "polls",
			Name:      "created_total",
			Help:      "Total number of polls created.",
		},
	)

	pollsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quickpoll",
			Subsystem: "polls",
			Name:      "deleted_total",
			Help:      "Total number of polls deleted.",
		},
	)

	votesCast = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quickpoll",
			Subsystem: "votes",
			Name:      "cast_total",
			Help:      "Total number of votes recorded.",
		},
	)

	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickpoll",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Datastore failures by operation.",
		},
		[]string{"operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		pollsCreated,
		pollsDeleted,
		votesCast,
		storeErrors,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		method := canonicalMethod(r.Method)
		path := canonicalPath(r.URL.Path)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

func PollCreated() { pollsCreated.Inc() }

func PollDeleted() { pollsDeleted.Inc() }

func VoteCast() { votesCast.Inc() }

// StoreError counts a failed datastore operation
func StoreError(operation string) {
	if operation == "" {
		operation = "unknown"
	}
	storeErrors.WithLabelValues(operation).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func canonicalMethod(m string) string {
	switch m = strings.ToUpper(m); m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodDelete, http.MethodOptions:
		return m
	}
	return "OTHER"
}

// routeTemplates are the path labels the router can serve; "{id}" matches
// any single segment
var routeTemplates = [][]string{
	{"health"},
	{"polls"},
	{"polls", "{id}"},
	{"polls", "{id}", "vote"},
	{"polls", "{id}", "results"},
	{"polls", "{id}", "options"},
	{"polls", "{id}", "options", "{id}"},
}

// canonicalPath maps a request path onto its route template so label
// cardinality stays bounded: /polls/12/options/5 becomes
// /polls/{id}/options/{id}, and anything unrouted becomes "other".
func canonicalPath(raw string) string {
	if raw == "" || raw == "/" {
		return "/"
	}
	parts := strings.Split(strings.Trim(raw, "/"), "/")

	for _, tmpl := range routeTemplates {
		if matchTemplate(tmpl, parts) {
			return "/" + strings.Join(tmpl, "/")
		}
	}
	return "other"
}

func matchTemplate(tmpl, parts []string) bool {
	if len(tmpl) != len(parts) {
		return false
	}
	for i, seg := range tmpl {
		if parts[i] == "" {
			return false
		}
		if seg != "{id}" && seg != parts[i] {
			return false
		}
	}
	return true
}
