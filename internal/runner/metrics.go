package runner

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "digestkit"

// Metrics counts the checks a runner performs. Each runner owns a private
// registry so that several runners can live in one process.
type Metrics struct {
	registry *prometheus.Registry
	checks   *prometheus.CounterVec
	bytes    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Digest checks performed, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hashed_bytes_total",
			Help:      "Message bytes digested during checks.",
		}, []string{"algorithm"}),
	}
	m.registry.MustRegister(m.checks, m.bytes)
	return m
}

func (m *Metrics) observe(algorithm string, n uint64, ok bool) {
	outcome := "pass"
	if !ok {
		outcome = "fail"
	}
	m.checks.WithLabelValues(algorithm, outcome).Inc()
	m.bytes.WithLabelValues(algorithm).Add(float64(n))
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
