package http

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/orrerylabs/orrery/internal/http"

// Metrics holds the HTTP and scene instruments.
type Metrics struct {
	meter         metric.Meter
	logger        *zap.Logger
	requestsTotal metric.Int64Counter
	requestDur    metric.Float64Histogram
	composesTotal metric.Int64Counter
	sceneObjects  metric.Int64Histogram
	picksTotal    metric.Int64Counter
}

// NewMetrics creates the instruments on the global meter provider.
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.requestsTotal, err = m.meter.Int64Counter(
		"orrery.http.requests_total",
		metric.WithDescription("Total HTTP requests by method, path, and status code."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.logger.Warn("failed to create requests counter", zap.Error(err))
	}

	m.requestDur, err = m.meter.Float64Histogram(
		"orrery.http.request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds by method, path, and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0),
	)
	if err != nil {
		m.logger.Warn("failed to create duration histogram", zap.Error(err))
	}

	m.composesTotal, err = m.meter.Int64Counter(
		"orrery.scene.composes_total",
		metric.WithDescription("Scene compositions served to renderers."),
		metric.WithUnit("{scene}"),
	)
	if err != nil {
		m.logger.Warn("failed to create composes counter", zap.Error(err))
	}

	m.sceneObjects, err = m.meter.Int64Histogram(
		"orrery.scene.objects",
		metric.WithDescription("Objects per composed scene."),
		metric.WithUnit("{object}"),
	)
	if err != nil {
		m.logger.Warn("failed to create objects histogram", zap.Error(err))
	}

	m.picksTotal, err = m.meter.Int64Counter(
		"orrery.scene.picks_total",
		metric.WithDescription("Pick events accepted by the selection state machine."),
		metric.WithUnit("{pick}"),
	)
	if err != nil {
		m.logger.Warn("failed to create picks counter", zap.Error(err))
	}
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			attrs := metric.WithAttributes(
				attribute.String("method", c.Request().Method),
				attribute.String("path", c.Path()),
				attribute.String("status", strconv.Itoa(c.Response().Status)),
			)
			ctx := c.Request().Context()
			if m.requestsTotal != nil {
				m.requestsTotal.Add(ctx, 1, attrs)
			}
			if m.requestDur != nil {
				m.requestDur.Record(ctx, time.Since(start).Seconds(), attrs)
			}
			return err
		}
	}
}

// RecordCompose counts one served scene of the given size.
func (m *Metrics) RecordCompose(ctx context.Context, objects int) {
	if m.composesTotal != nil {
		m.composesTotal.Add(ctx, 1)
	}
	if m.sceneObjects != nil {
		m.sceneObjects.Record(ctx, int64(objects))
	}
}

// RecordPick counts one accepted pick event.
func (m *Metrics) RecordPick(ctx context.Context) {
	if m.picksTotal != nil {
		m.picksTotal.Add(ctx, 1)
	}
}
