package worker

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "bpi"
	metricsSubsystem = "worker"
)

type Metrics struct {
	received      prometheus.Counter
	processed     prometheus.Counter
	malformed     prometheus.Counter
	duplicates    prometheus.Counter
	pollErrors    prometheus.Counter
	deleteErrors  prometheus.Counter
	publishErrors prometheus.Counter
	inFlight      prometheus.Gauge
}

func NewMetrics() *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      name,
			Help:      help,
		})
	}
	return &Metrics{
		received:      counter("messages_received_total", "Number of messages received from the work queue"),
		processed:     counter("messages_processed_total", "Number of work items whose simulated work completed"),
		malformed:     counter("messages_malformed_total", "Number of messages whose body is not a valid work item"),
		duplicates:    counter("messages_duplicate_total", "Number of redelivered messages that were already processed"),
		pollErrors:    counter("poll_errors_total", "Number of failed receive calls"),
		deleteErrors:  counter("delete_errors_total", "Number of failed delete calls"),
		publishErrors: counter("publish_errors_total", "Number of duration samples that could not be published"),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "messages_in_flight",
			Help:      "Number of messages currently being worked on",
		}),
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.received, m.processed, m.malformed, m.duplicates,
		m.pollErrors, m.deleteErrors, m.publishErrors, m.inFlight,
	}
}
