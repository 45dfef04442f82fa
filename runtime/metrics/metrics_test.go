package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCollectorsRegisterWithoutCollision(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}
}

func TestObserveFlushRecordsSample(t *testing.T) {
	m := New()
	m.ObserveFlush(10 * time.Millisecond)

	var metric dto.Metric
	if err := m.FlushLatency.Write(&metric); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if metric.GetHistogram().GetSampleCount() != 1 {
		t.Fatalf("sample count = %d, want 1", metric.GetHistogram().GetSampleCount())
	}
}

func TestSinkQueueDepthPerLabel(t *testing.T) {
	m := New()
	m.SinkQueueDepth.WithLabelValues("file").Set(3)
	m.SinkQueueDepth.WithLabelValues("stdout").Set(1)

	var metric dto.Metric
	if err := m.SinkQueueDepth.WithLabelValues("file").Write(&metric); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if metric.GetGauge().GetValue() != 3 {
		t.Fatalf("file depth = %v, want 3", metric.GetGauge().GetValue())
	}
}
