package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salesdesk"

// Metrics groups the collectors exported by salesdesk.
type Metrics struct {
	HTTPInFlight prometheus.Gauge
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	UpstreamInFlight prometheus.Gauge
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	NewOrders prometheus.Gauge
	Polls     *prometheus.CounterVec
	Alerts    prometheus.Counter
	Mutations *prometheus.CounterVec
}

// NewRegistry returns a registry preloaded with runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		UpstreamInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store_api",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight requests to the store API.",
		}),
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store_api",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the store API.",
		}, []string{"method", "code"}),
		UpstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store_api",
			Name:      "request_duration_seconds",
			Help:      "Store API request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),

		NewOrders: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "new",
			Help:      "Number of new orders seen by the last successful poll.",
		}),
		Polls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "polls_total",
			Help:      "Total number of new-order polls by result.",
		}, []string{"result"}),
		Alerts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "alerts_total",
			Help:      "Total number of new-order alerts raised.",
		}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "mutations_total",
			Help:      "Total number of admin mutations by action and result.",
		}, []string{"action", "result"}),
	}
}

// InstrumentTransport wraps next with store API request metrics.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperInFlight(m.UpstreamInFlight,
		promhttp.InstrumentRoundTripperCounter(m.UpstreamRequests,
			promhttp.InstrumentRoundTripperDuration(m.UpstreamDuration, next),
		),
	)
}

// Handler exposes gathered metrics in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ObserveMutation counts a forwarded admin mutation.
func (m *Metrics) ObserveMutation(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Mutations.WithLabelValues(action, result).Inc()
}
