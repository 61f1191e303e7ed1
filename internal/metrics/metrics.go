// Package metrics defines the Prometheus collectors for the tutor API and
// exposes them for scraping.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all collectors. Each instance owns its registry so tests can
// create as many as they like.
type Metrics struct {
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
	AnalysesTotal           *prometheus.CounterVec
	AnalysisScore           prometheus.Histogram
	ExtractionFailuresTotal prometheus.Counter
	ChatRequestsTotal       *prometheus.CounterVec
	ChatLatency             prometheus.Histogram
	LoginsTotal             *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_analyses_total",
				Help: "Resume analyses by match tier (good, moderate, poor).",
			},
			[]string{"tier"},
		),
		AnalysisScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_analysis_score",
				Help:    "Distribution of resume/job description similarity scores.",
				Buckets: []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1},
			},
		),
		ExtractionFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "resume_extraction_failures_total",
				Help: "Uploaded resumes whose text could not be extracted.",
			},
		),
		ChatRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_chat_requests_total",
				Help: "Tutor chat requests by result (ok, error).",
			},
			[]string{"result"},
		),
		ChatLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tutor_chat_latency_seconds",
				Help:    "Round-trip latency of tutor model calls in seconds.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
			},
		),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tutor_logins_total",
				Help: "Successful logins by role.",
			},
			[]string{"role"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AnalysesTotal,
		m.AnalysisScore,
		m.ExtractionFailuresTotal,
		m.ChatRequestsTotal,
		m.ChatLatency,
		m.LoginsTotal,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Route().Path
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
