package portscan

import (
	"sync"
	"testing"
)

func TestTrackerConcurrentRecord(t *testing.T) {
	const workers = 64
	const perWorker = 100

	tr := NewTracker(workers * perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				state := StateClosed
				if j%2 == 0 {
					state = StateOpen
				}
				tr.Record(PortResult{State: state})
			}
		}(i)
	}
	wg.Wait()

	snap := tr.Snapshot()
	if snap.Attempted != workers*perWorker {
		t.Errorf("attempted = %d, want %d", snap.Attempted, workers*perWorker)
	}
	if snap.Open != workers*perWorker/2 {
		t.Errorf("open = %d, want %d", snap.Open, workers*perWorker/2)
	}
	if snap.Total != workers*perWorker {
		t.Errorf("total = %d, want %d", snap.Total, workers*perWorker)
	}
}

func TestTrackerSnapshotNeverTorn(t *testing.T) {
	tr := NewTracker(10000)
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tr.Record(PortResult{State: StateOpen})
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			return
		default:
			snap := tr.Snapshot()
			if snap.Open > snap.Attempted {
				t.Fatalf("torn snapshot: open %d > attempted %d", snap.Open, snap.Attempted)
			}
		}
	}
}
