package plugin

import (
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

func TestAsFilterDropsBelowThreshold(t *testing.T) {
	f := AsFilter(NewLevelStage("gate", level.Warn))
	info := record.NewEmit(time.Now(), level.Info, "t", "x", "m", "f.go", nil)
	if f.Allow(&info) {
		t.Fatal("expected Info record to be dropped by Warn-gated filter")
	}
}

func TestAsFilterAllowsAboveThreshold(t *testing.T) {
	f := AsFilter(NewLevelStage("gate", level.Warn))
	errRec := record.NewEmit(time.Now(), level.Error, "t", "x", "m", "f.go", nil)
	if !f.Allow(&errRec) {
		t.Fatal("expected Error record to be allowed by Warn-gated filter")
	}
}
