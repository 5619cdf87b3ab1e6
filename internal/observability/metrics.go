package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so repeated construction (tests) never collides
// with the default global registry. A nil *Metrics is a no-op sink.
type Metrics struct {
	registry     *prometheus.Registry
	notesCreated *prometheus.CounterVec
	aiCalls      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	notesCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recallai_notes_created_total",
		Help: "Notes persisted, by note type.",
	}, []string{"note_type"})
	aiCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recallai_ai_calls_total",
		Help: "Outbound AI calls, by call type and outcome.",
	}, []string{"call_type", "outcome"})
	registry.MustRegister(notesCreated, aiCalls)

	return &Metrics{
		registry:     registry,
		notesCreated: notesCreated,
		aiCalls:      aiCalls,
	}
}

func (m *Metrics) IncNoteCreated(noteType string) {
	if m == nil {
		return
	}
	m.notesCreated.WithLabelValues(noteType).Inc()
}

func (m *Metrics) IncAICall(callType, outcome string) {
	if m == nil {
		return
	}
	m.aiCalls.WithLabelValues(callType, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
