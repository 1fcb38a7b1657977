package hal

import (
	"github.com/prometheus/client_golang/prometheus"
)

type outcome string

const (
	outcomeApplied    outcome = "applied"
	outcomeSuppressed outcome = "suppressed"
	outcomeIgnored    outcome = "ignored"
	outcomeFailed     outcome = "failed"
	outcomeUnhandled  outcome = "unhandled"
)

// Metrics counts what the overrides did with each call, on a private
// registry so several HALs can coexist in tests.
type Metrics struct {
	registry      *prometheus.Registry
	hints         *prometheus.CounterVec
	displays      *prometheus.CounterVec
	encodeEnabled *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		hints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "powerpulse",
			Name:      "hints_total",
			Help:      "Power hints received, by chip, hint and outcome.",
		}, []string{"chip", "hint", "outcome"}),
		displays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "powerpulse",
			Name:      "display_transitions_total",
			Help:      "Display interactivity changes, by chip, state and result.",
		}, []string{"chip", "state", "result"}),
		encodeEnabled: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "powerpulse",
			Name:      "video_encode_enabled",
			Help:      "Whether the video encode tuning table is applied.",
		}, []string{"chip"}),
	}
	m.registry.MustRegister(m.hints, m.displays, m.encodeEnabled)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile dumps the metrics in the text exposition format for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) hint(chip string, kind Kind, o outcome) {
	m.hints.WithLabelValues(chip, kind.String(), string(o)).Inc()
}

func (m *Metrics) display(chip string, on bool, r Result) {
	state := "off"
	if on {
		state = "on"
	}
	result := "handled"
	if r != Handled {
		result = "not_handled"
	}
	m.displays.WithLabelValues(chip, state, result).Inc()
}

func (m *Metrics) encode(chip string, enabled bool) {
	v := 0.0
	if enabled {
		v = 1
	}
	m.encodeEnabled.WithLabelValues(chip).Set(v)
}
