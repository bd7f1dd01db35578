package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/parallelowow/pkg/observability"
)

const metricsNamespace = "parallelowow"

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	renderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "render",
		Name:      "format_duration_seconds",
		Help:      "Time spent rendering one artifact, by format.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"format"})

	renderBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "render",
		Name:      "bytes_total",
		Help:      "Bytes of rendered artifacts, by format.",
	}, []string{"format"})

	renderErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "render",
		Name:      "errors_total",
		Help:      "Failed renders, by format.",
	}, []string{"format"})

	styleFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "render",
		Name:      "style_fallbacks_total",
		Help:      "Style properties that were rejected and replaced by their default.",
	}, []string{"property"})

	cacheEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "cache",
		Name:      "events_total",
		Help:      "Cache hits, misses and writes, by key type.",
	}, []string{"key_type", "event"})
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		renderDuration,
		renderBytes,
		renderErrors,
		styleFallbacks,
		cacheEvents,
	)
}

// Metrics records pipeline, cache and HTTP events as Prometheus metrics.
// Install it with InstallMetrics.
type Metrics struct{}

var (
	_ observability.PipelineHooks = Metrics{}
	_ observability.CacheHooks    = Metrics{}
	_ observability.HTTPHooks     = Metrics{}
)

// InstallMetrics registers Metrics as the global observability hooks.
func InstallMetrics() {
	var m Metrics
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (Metrics) OnStyleFallback(_ context.Context, property string) {
	styleFallbacks.WithLabelValues(property).Inc()
}

func (Metrics) OnRenderStart(context.Context, []string) {}

func (Metrics) OnFormatComplete(_ context.Context, format string, size int, duration time.Duration, err error) {
	if err != nil {
		renderErrors.WithLabelValues(format).Inc()
		return
	}
	renderDuration.WithLabelValues(format).Observe(duration.Seconds())
	renderBytes.WithLabelValues(format).Add(float64(size))
}

func (Metrics) OnRenderComplete(context.Context, []string, time.Duration, error) {}

func (Metrics) OnCacheHit(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (Metrics) OnCacheMiss(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (Metrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	cacheEvents.WithLabelValues(keyType, "set").Inc()
}

func (Metrics) OnRequest(context.Context, string, string) {}

func (Metrics) OnResponse(_ context.Context, method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}
