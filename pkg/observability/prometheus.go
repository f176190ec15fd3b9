package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loracharts"

// Prometheus implements LayoutHooks and HTTPHooks with Prometheus collectors
// registered on a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	layouts   *prometheus.CounterVec
	labelsPer prometheus.Histogram
	formats   *prometheus.CounterVec
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		layouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "labels", Name: "axis_layouts_total",
			Help: "Rotation decisions by resulting angle.",
		}, []string{"rotation", "overlap"}),
		labelsPer: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "labels", Name: "labels_per_layout",
			Help:    "Number of labels per rotation decision.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		formats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "format", Name: "values_total",
			Help: "Formatted values by kind.",
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "Completed HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "errors_total",
			Help: "Requests answered with an error body.",
		}, []string{"route"}),
	}
	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.layouts, p.labelsPer, p.formats, p.requests, p.latency, p.errors,
	)
	return p
}

// Registry returns the registry holding every collector.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) OnAxisLayout(_ context.Context, n, rotation int, overlap bool, _ time.Duration) {
	p.layouts.WithLabelValues(strconv.Itoa(rotation), strconv.FormatBool(overlap)).Inc()
	p.labelsPer.Observe(float64(n))
}

func (p *Prometheus) OnFormat(_ context.Context, kind string, count int) {
	p.formats.WithLabelValues(kind).Add(float64(count))
}

func (p *Prometheus) OnRequest(context.Context, string, string) {}

func (p *Prometheus) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.latency.WithLabelValues(route).Observe(d.Seconds())
}

func (p *Prometheus) OnError(_ context.Context, _, route string, _ error) {
	p.errors.WithLabelValues(route).Inc()
}

var (
	_ LayoutHooks = (*Prometheus)(nil)
	_ HTTPHooks   = (*Prometheus)(nil)
)
