package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Validations      *prometheus.CounterVec
	ValidationErrors prometheus.Counter
	ColorToggles     *prometheus.CounterVec
	TreeRenders      *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msalsa_sequence_validations_total",
			Help: "Sequence inputs validated, by outcome",
		}, []string{"outcome"}),
		ValidationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "msalsa_sequence_validation_errors_total",
			Help: "Invalid characters reported across all validations",
		}),
		ColorToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msalsa_color_toggles_total",
			Help: "Alignment color toggles, by resulting mode",
		}, []string{"mode"}),
		TreeRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msalsa_tree_renders_total",
			Help: "Tree canvas renders, by outcome",
		}, []string{"outcome"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "msalsa_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) ObserveValidation(valid bool, errorCount int) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.Validations.WithLabelValues(outcome).Inc()
	m.ValidationErrors.Add(float64(errorCount))
}

func (m *Metrics) IncrementColorToggle(applied bool) {
	if m == nil {
		return
	}
	mode := "plain"
	if applied {
		mode = "colored"
	}
	m.ColorToggles.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncrementTreeRender(err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.TreeRenders.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequestLatency(route, method string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(route, method).Observe(seconds)
}
