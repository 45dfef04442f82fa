package group

import (
	"context"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
	"dirpx.dev/logflow/runtime/sink/memory"
)

func TestDoLogsFansOutToAllMembers(t *testing.T) {
	g := New("fanout")
	a := memory.New("a")
	b := memory.New("b")
	if err := g.Add(a); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if err := g.Add(b); err != nil {
		t.Fatalf("Add b: %v", err)
	}

	r := record.NewEmit(time.Now(), level.Info, "t", "x", "m", "f.go", nil)
	r.Formatted = "line\n"
	if err := g.DoLogs(context.Background(), sink.Batch{r}); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}

	if got := a.Lines(); len(got) != 1 {
		t.Fatalf("member a lines = %v", got)
	}
	if got := b.Lines(); len(got) != 1 {
		t.Fatalf("member b lines = %v", got)
	}
}

func TestAddDuplicateNameFails(t *testing.T) {
	g := New("fanout")
	if err := g.Add(memory.New("a")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.Add(memory.New("a")); err == nil {
		t.Fatal("expected error re-adding sink with same name")
	}
}

func TestRemoveUnknownFails(t *testing.T) {
	g := New("fanout")
	if err := g.Remove("missing"); err == nil {
		t.Fatal("expected error removing unregistered sink")
	}
}

func TestListSorted(t *testing.T) {
	g := New("fanout")
	_ = g.Add(memory.New("b"))
	_ = g.Add(memory.New("a"))
	got := g.List()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("List() = %v", got)
	}
}

// closerSink wraps memory.Sink to also satisfy io.Closer, standing in
// for a real closer member (e.g. the file sink) without pulling in a
// filesystem dependency for this test.
type closerSink struct {
	*memory.Sink
	closed bool
}

func (c *closerSink) Close() error {
	c.closed = true
	return nil
}

func TestCloseClosesMembersThatImplementCloser(t *testing.T) {
	g := New("fanout")
	closer := &closerSink{Sink: memory.New("closer")}
	plain := memory.New("plain")
	if err := g.Add(closer); err != nil {
		t.Fatalf("Add closer: %v", err)
	}
	if err := g.Add(plain); err != nil {
		t.Fatalf("Add plain: %v", err)
	}

	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !closer.closed {
		t.Fatal("expected closer member to be closed")
	}
}
