package stdout

import (
	"bytes"
	"context"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
)

func TestDoLogsWritesAndFlushes(t *testing.T) {
	var buf bytes.Buffer
	s := New("stdout", &buf)

	r := record.NewEmit(time.Now(), level.Info, "t", "a", "m", "f.go", nil)
	r.Formatted = "hi\n"
	if err := s.DoLogs(context.Background(), sink.Batch{r}); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Fatalf("buf = %q", buf.String())
	}
}
