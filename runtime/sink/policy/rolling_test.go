package policy

import (
	"testing"
	"time"
)

func TestBySize(t *testing.T) {
	p := BySize{MaxBytes: 100}
	now := time.Now()
	if p.ShouldRotate(now, 50, now) {
		t.Fatal("should not rotate below MaxBytes")
	}
	if !p.ShouldRotate(now, 100, now) {
		t.Fatal("should rotate at MaxBytes")
	}
}

func TestByDuration(t *testing.T) {
	p := ByDuration{Interval: time.Hour}
	created := time.Now()
	if p.ShouldRotate(created, 0, created.Add(30*time.Minute)) {
		t.Fatal("should not rotate before interval elapses")
	}
	if !p.ShouldRotate(created, 0, created.Add(time.Hour)) {
		t.Fatal("should rotate once interval elapses")
	}
}

func TestBySizeOrDuration(t *testing.T) {
	p := BySizeOrDuration{MaxBytes: 1000, Interval: time.Hour}
	created := time.Now()
	if p.ShouldRotate(created, 10, created.Add(time.Minute)) {
		t.Fatal("should not rotate when neither threshold is met")
	}
	if !p.ShouldRotate(created, 1000, created.Add(time.Minute)) {
		t.Fatal("should rotate on size threshold alone")
	}
	if !p.ShouldRotate(created, 10, created.Add(time.Hour)) {
		t.Fatal("should rotate on duration threshold alone")
	}
}
