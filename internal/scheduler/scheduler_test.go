package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osse101/InkGacha_Go/internal/worker"
)

func TestScheduler_RunsJobAtInterval(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	var runs atomic.Int32
	fired := make(chan struct{}, 8)
	sched.Schedule(10*time.Millisecond, worker.JobFunc(func(context.Context) error {
		runs.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	}))

	// Wait for at least two ticks.
	for i := 0; i < 2; i++ {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduled job did not run")
		}
	}

	if runs.Load() < 2 {
		t.Fatalf("expected at least 2 runs, got %d", runs.Load())
	}
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	var runs atomic.Int32
	sched.Schedule(5*time.Millisecond, worker.JobFunc(func(context.Context) error {
		runs.Add(1)
		return nil
	}))

	time.Sleep(30 * time.Millisecond)
	sched.Stop()

	settled := runs.Load()
	time.Sleep(30 * time.Millisecond)
	// At most one already-enqueued job may land after Stop.
	if runs.Load() > settled+1 {
		t.Fatalf("jobs kept running after Stop: %d -> %d", settled, runs.Load())
	}
}
