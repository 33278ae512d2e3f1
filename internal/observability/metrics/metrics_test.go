package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestChatMetrics_RegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.ObserveTurn("dialogue")
	m.ObserveTurn("qualification")
	m.ObserveLLMLatency(0.42)
	m.ObserveSessionCreated()
	m.ObserveLeadCaptured()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 4 {
		t.Fatalf("expected 4 metric families, got %d", len(families))
	}
}

func TestChatMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *ChatMetrics
	m.ObserveTurn("dialogue")
	m.ObserveLLMLatency(1)
	m.ObserveSessionCreated()
	m.ObserveLeadCaptured()
}
