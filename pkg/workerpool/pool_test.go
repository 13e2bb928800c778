package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsEveryJob(t *testing.T) {
	var sum atomic.Int64
	p := New(context.Background(), 4, func(_ context.Context, n int) {
		sum.Add(int64(n))
	})
	for i := 1; i <= 1000; i++ {
		if !p.Submit(i) {
			t.Fatalf("submit %d rejected", i)
		}
	}
	p.Close()
	if got := sum.Load(); got != 500500 {
		t.Fatalf("sum = %d, want 500500", got)
	}
	if p.Submit(1) {
		t.Fatalf("submit after Close accepted")
	}
	p.Close()
}

func TestPoolStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{}, 1)
	p := New(ctx, 1, func(ctx context.Context, _ int) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
	})
	p.Submit(1)
	<-started
	cancel()

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Close did not return after cancel")
	}
	if p.Submit(2) {
		t.Fatalf("submit after cancel accepted")
	}
}

func TestPoolStopAbandonsQueued(t *testing.T) {
	var ran atomic.Int32
	started := make(chan struct{})
	p := New(context.Background(), 1, func(ctx context.Context, i int) {
		ran.Add(1)
		if i == 0 {
			close(started)
			<-ctx.Done()
		}
	})
	for i := 0; i < 5; i++ {
		if !p.Submit(i) {
			t.Fatalf("submit %d rejected", i)
		}
	}
	<-started
	p.Stop()
	if n := ran.Load(); n != 1 {
		t.Fatalf("%d handlers ran, want only the running one", n)
	}
	if p.Submit(9) {
		t.Fatalf("submit after Stop accepted")
	}
	p.Stop()
}

func TestPoolZeroWorkers(t *testing.T) {
	var n atomic.Int32
	p := New(context.Background(), 0, func(context.Context, string) { n.Add(1) })
	p.Submit("a")
	p.Close()
	if n.Load() != 1 {
		t.Fatalf("job did not run with zero workers requested")
	}
}
