package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	apipipeline "dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
	"dirpx.dev/logflow/runtime/format/plain"
	"dirpx.dev/logflow/runtime/sink/memory"
)

func newTestEngine(t *testing.T, lvl level.Level, sinks ...*memory.Sink) *Engine {
	t.Helper()
	appends := make([]apipipeline.SinkConfig, 0, len(sinks))
	for _, s := range sinks {
		appends = append(appends, apipipeline.SinkConfig{Sink: s, QueueCapacity: 8})
	}
	e, err := New(apipipeline.Config{
		Level:     lvl,
		ChanLen:   16,
		Formatter: plain.New(),
		Appends:   appends,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Exit() })
	return e
}

func TestEmitDeliversToSink(t *testing.T) {
	m := memory.New("mem")
	e := newTestEngine(t, level.Info, m)

	r := record.NewEmit(time.Now(), level.Info, "svc", "hello world", "pkg", "f.go", nil)
	if err := e.Emit(context.Background(), r); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := m.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "hello world") {
		t.Fatalf("unexpected line: %q", lines[0])
	}
}

func TestEmitBelowLevelDropped(t *testing.T) {
	m := memory.New("mem")
	e := newTestEngine(t, level.Warn, m)

	r := record.NewEmit(time.Now(), level.Debug, "svc", "ignored", "pkg", "f.go", nil)
	if err := e.Emit(context.Background(), r); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if lines := m.Lines(); len(lines) != 0 {
		t.Fatalf("expected no lines below level gate, got %v", lines)
	}
}

func TestFlushWaitsForMultipleSinks(t *testing.T) {
	a := memory.New("a")
	b := memory.New("b")
	e := newTestEngine(t, level.Info, a, b)

	r := record.NewEmit(time.Now(), level.Info, "svc", "fanout", "pkg", "f.go", nil)
	if err := e.Emit(context.Background(), r); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(a.Lines()) != 1 || len(b.Lines()) != 1 {
		t.Fatalf("expected both sinks to receive the record: a=%v b=%v", a.Lines(), b.Lines())
	}
}

func TestExitDrainsBeforeStopping(t *testing.T) {
	m := memory.New("mem")
	e := newTestEngine(t, level.Info, m)

	for i := 0; i < 5; i++ {
		r := record.NewEmit(time.Now(), level.Info, "svc", "line", "pkg", "f.go", nil)
		if err := e.Emit(context.Background(), r); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := e.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if len(m.Lines()) != 5 {
		t.Fatalf("expected all 5 lines delivered before stop, got %d", len(m.Lines()))
	}

	if err := e.Emit(context.Background(), record.NewEmit(time.Now(), level.Info, "", "late", "", "", nil)); err != ErrClosed {
		t.Fatalf("expected ErrClosed after Exit, got %v", err)
	}
}

func TestHealthReflectsExit(t *testing.T) {
	m := memory.New("mem")
	e := newTestEngine(t, level.Info, m)

	report := e.Health(context.Background())
	for _, res := range report.Results {
		if !res.OK() {
			t.Fatalf("expected healthy worker before Exit, got %+v", res)
		}
	}

	if err := e.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}

	report = e.Health(context.Background())
	for _, res := range report.Results {
		if res.OK() {
			t.Fatalf("expected unhealthy worker after Exit, got %+v", res)
		}
	}
}

type panickyFormatter struct{ calls int }

func (f *panickyFormatter) Format(r *record.Record) (string, bool) {
	f.calls++
	if f.calls == 1 {
		panic("boom")
	}
	return "ok\n", true
}

func TestFormatterPanicDropsLineAndContinues(t *testing.T) {
	m := memory.New("mem")
	appends := []apipipeline.SinkConfig{{Sink: m, QueueCapacity: 8}}
	e, err := New(apipipeline.Config{
		Level:     level.Info,
		ChanLen:   16,
		Formatter: &panickyFormatter{},
		Appends:   appends,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Exit() })

	first := record.NewEmit(time.Now(), level.Info, "", "first", "", "", nil)
	second := record.NewEmit(time.Now(), level.Info, "", "second", "", "", nil)
	if err := e.Emit(context.Background(), first); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Emit(context.Background(), second); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := m.Lines()
	if len(lines) != 1 || lines[0] != "ok\n" {
		t.Fatalf("expected only the second record to format, got %v", lines)
	}
}

type panickySink struct{ name string }

func (s *panickySink) Name() string { return s.name }
func (s *panickySink) DoLogs(ctx context.Context, batch sink.Batch) error {
	panic("sink boom")
}
func (s *panickySink) Flush(ctx context.Context) error { return nil }

func TestSinkPanicIsolatedFromOtherSinks(t *testing.T) {
	bad := &panickySink{name: "bad"}
	good := memory.New("good")
	appends := []apipipeline.SinkConfig{
		{Sink: bad, QueueCapacity: 8},
		{Sink: good, QueueCapacity: 8},
	}
	e, err := New(apipipeline.Config{
		Level:     level.Info,
		ChanLen:   16,
		Formatter: plain.New(),
		Appends:   appends,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = e.Exit() })

	r := record.NewEmit(time.Now(), level.Info, "svc", "survives", "pkg", "f.go", nil)
	if err := e.Emit(context.Background(), r); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if lines := good.Lines(); len(lines) != 1 {
		t.Fatalf("expected the surviving sink to still receive records, got %v", lines)
	}
}

type closingSink struct {
	*memory.Sink
	closed bool
}

func (c *closingSink) Close() error {
	c.closed = true
	return nil
}

func TestExitClosesSinksImplementingCloser(t *testing.T) {
	closer := &closingSink{Sink: memory.New("closer")}
	appends := []apipipeline.SinkConfig{{Sink: closer, QueueCapacity: 8}}
	e, err := New(apipipeline.Config{
		Level:     level.Info,
		ChanLen:   16,
		Formatter: plain.New(),
		Appends:   appends,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := e.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if !closer.closed {
		t.Fatal("expected sink to be closed once its worker drained and stopped")
	}
}

func TestPrintBypassesFilters(t *testing.T) {
	m := memory.New("mem")
	e := newTestEngine(t, level.Fatal, m)

	// Print records are constructed with level.Info via record.NewPrint,
	// but they never pass through the filter chain at all.
	if err := e.Print(context.Background(), "raw line\n"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if lines := m.Lines(); len(lines) != 1 || lines[0] != "raw line\n" {
		t.Fatalf("expected the raw printed line, got %v", lines)
	}
}
