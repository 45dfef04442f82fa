package memory

import (
	"context"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
)

func TestDoLogsAccumulatesEmitOnly(t *testing.T) {
	s := New("mem")
	r := record.NewEmit(time.Now(), level.Info, "t", "a", "m", "f.go", nil)
	r.Formatted = "hello\n"

	batch := sink.Batch{r, record.NewExit(time.Now())}
	if err := s.DoLogs(context.Background(), batch); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}
	if got := s.Lines(); len(got) != 1 || got[0] != "hello\n" {
		t.Fatalf("Lines() = %v, want [\"hello\\n\"]", got)
	}
}

func TestResetClears(t *testing.T) {
	s := New("mem")
	r := record.NewEmit(time.Now(), level.Info, "t", "a", "m", "f.go", nil)
	r.Formatted = "x"
	_ = s.DoLogs(context.Background(), sink.Batch{r})
	s.Reset()
	if got := s.Lines(); len(got) != 0 {
		t.Fatalf("Lines() after Reset = %v, want empty", got)
	}
}
