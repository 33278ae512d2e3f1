package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat flow.
type ChatMetrics struct {
	turnsTotal      *prometheus.CounterVec
	llmLatency      prometheus.Histogram
	sessionsCreated prometheus.Counter
	leadsCaptured   prometheus.Counter
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtier",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns by outcome",
		}, []string{"outcome"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courtier",
			Subsystem: "chat",
			Name:      "llm_latency_seconds",
			Help:      "Latency of language model completions",
			Buckets:   prometheus.DefBuckets,
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "courtier",
			Subsystem: "chat",
			Name:      "sessions_created_total",
			Help:      "Total sessions created",
		}),
		leadsCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "courtier",
			Subsystem: "chat",
			Name:      "leads_captured_total",
			Help:      "Total completed lead qualifications",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.llmLatency, m.sessionsCreated, m.leadsCaptured)
	return m
}

// ObserveTurn counts a finished chat turn. Outcomes: qualification, dialogue,
// fallback, rejected, error.
func (m *ChatMetrics) ObserveTurn(outcome string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(outcome).Inc()
}

func (m *ChatMetrics) ObserveLLMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(seconds)
}

func (m *ChatMetrics) ObserveSessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

func (m *ChatMetrics) ObserveLeadCaptured() {
	if m == nil {
		return
	}
	m.leadsCaptured.Inc()
}
