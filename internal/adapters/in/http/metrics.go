package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "ordertaking"

// Order outcomes counted by Metrics.OrdersTotal.
const (
	outcomePlaced     = "placed"
	outcomeReplayed   = "replayed"
	outcomeInProgress = "in_progress"
	outcomeInvalid    = "invalid"
	outcomeValidation = "validation_error"
	outcomePricing    = "pricing_error"
	outcomeRemote     = "remote_error"
	outcomeDuplicate  = "duplicate"
	outcomeError      = "error"
)

// Metrics holds the HTTP and order-taking collectors.
type Metrics struct {
	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	OrdersTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// Each registry can hold one Metrics.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route", "method"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "orders_total",
		Help:      "Place order requests by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(requests, latency, orders)
	return &Metrics{
		Requests:    requests,
		LatencyMS:   latency,
		OrdersTotal: orders,
		gatherer:    reg,
	}
}

// Middleware records count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.Requests.WithLabelValues(route, method, status).Inc()
			m.LatencyMS.WithLabelValues(route, method).
				Observe(float64(time.Since(start).Microseconds()) / 1000)
			return nil
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) orderOutcome(outcome string) {
	m.OrdersTotal.WithLabelValues(outcome).Inc()
}
