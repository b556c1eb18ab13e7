package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Placement outcomes recorded by ObservePlacement.
const (
	PlacementPlaced                = "placed"
	PlacementNoPartner             = "no_partner"
	PlacementInsufficientInventory = "insufficient_inventory"
	PlacementRejected              = "rejected"
	PlacementFailed                = "failed"
)

// Metrics holds the HTTP and order placement collectors on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	placements *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodorder",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "foodorder",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodorder",
			Name:      "order_placements_total",
			Help:      "Order placement attempts by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.placements,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Middleware records one request count and latency sample per request.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil {
				code, _ = statusFor(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(code)).Inc()
			m.duration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// ObservePlacement counts the outcome of one PlaceOrder call. A nil receiver is a no-op.
func (m *Metrics) ObservePlacement(err error) {
	if m == nil {
		return
	}
	m.placements.WithLabelValues(placementOutcome(err)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func placementOutcome(err error) string {
	switch {
	case err == nil:
		return PlacementPlaced
	case errors.Is(err, commands.ErrNoPartnerAvailable):
		return PlacementNoPartner
	case errors.Is(err, menu.ErrInsufficientInventory):
		return PlacementInsufficientInventory
	case errs.IsValidation(err), errors.Is(err, errs.ErrObjectNotFound):
		return PlacementRejected
	default:
		return PlacementFailed
	}
}
