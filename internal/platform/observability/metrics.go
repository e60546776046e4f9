// Package observability provides the Prometheus collector of the service.
package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chat_analytics"

// Collector holds the service metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	AggregatedRecords *prometheus.CounterVec
	BucketsReturned   *prometheus.HistogramVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),

		AggregatedRecords: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregated_records_total",
				Help:      "Records folded into buckets, by record kind",
			},
			[]string{"kind"},
		),
		BucketsReturned: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_buckets",
				Help:      "Number of buckets in an aggregation result",
				Buckets:   []float64{0, 1, 5, 12, 24, 31, 60, 366},
			},
			[]string{"kind"},
		),
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveAggregation records one aggregation pass.
func (c *Collector) ObserveAggregation(kind string, records, buckets int) {
	c.AggregatedRecords.WithLabelValues(kind).Add(float64(records))
	c.BucketsReturned.WithLabelValues(kind).Observe(float64(buckets))
}

// Middleware counts and times every request. Routes are labelled by their
// pattern so tenant ids do not create new series.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		c.RequestsInFlight.Inc()
		defer c.RequestsInFlight.Dec()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := ctx.Route().Path
		method := ctx.Method()
		c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		c.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
