package barrier

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestTokenWaitsForAllClones(t *testing.T) {
	tok := New()
	c1 := tok.Clone()
	c2 := tok.Clone()

	done := make(chan struct{})
	go func() {
		if err := tok.Wait(context.Background()); err != nil {
			t.Errorf("Wait returned error: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before all clones released")
	case <-time.After(20 * time.Millisecond):
	}

	c1.Release()
	select {
	case <-done:
		t.Fatal("Wait returned before all clones released")
	case <-time.After(20 * time.Millisecond):
	}

	c2.Release()
	tok.Release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after all references released")
	}
}

func TestTokenWaitRespectsContext(t *testing.T) {
	tok := New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := tok.Wait(ctx); err == nil {
		t.Fatal("expected context deadline error, got nil")
	}
	tok.Release()
}

func TestTokenConcurrentClonesAndReleases(t *testing.T) {
	tok := New()
	const n = 200

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		c := tok.Clone()
		go func() {
			defer wg.Done()
			c.Release()
		}()
	}
	wg.Wait()
	tok.Release()

	if err := tok.Wait(context.Background()); err != nil {
		t.Fatalf("Wait returned error after all releases: %v", err)
	}
}
