package portscan

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Scanner runs one scan of a port list against a resolved target. Not
// restartable; build a new Scanner per run.
type Scanner struct {
	target  Target
	ports   []uint16
	cfg     Config
	tracker *Tracker

	mu      sync.Mutex
	emitted []PortResult
	status  Status
	ran     bool
}

// NewScanner creates a scanner for the given resolved target, ascending
// port list and config.
func NewScanner(target Target, ports []uint16, cfg Config) *Scanner {
	return &Scanner{
		target:  target,
		ports:   ports,
		cfg:     cfg,
		tracker: NewTracker(len(ports)),
	}
}

// Tracker exposes the progress counters for the display layer to poll.
func (s *Scanner) Tracker() *Tracker {
	return s.tracker
}

// Run starts the scan and returns a channel of results in completion
// order. The channel is closed once every dispatched probe has finished;
// Status and Summary are valid from that point on.
//
// Probes are dispatched in ascending port order under a concurrency cap
// of cfg.Concurrency. Cancelling ctx stops new dispatches immediately
// and lets in-flight probes finish naturally, so cancellation latency is
// bounded by one probe timeout. A cancelled run closes the channel early
// with Status reporting StatusCancelled; it is not an error.
//
// Probe failures never abort the run; they arrive as StateError results.
// Run itself only fails on precondition violations, before any probing.
func (s *Scanner) Run(ctx context.Context) (<-chan PortResult, error) {
	if s.target.IP == "" {
		return nil, errors.New("scan target is not resolved")
	}
	if len(s.ports) == 0 {
		return nil, errors.New("no ports to scan")
	}
	if s.cfg.Timeout <= 0 {
		return nil, errors.New("probe timeout must be positive")
	}
	if s.ran {
		return nil, errors.New("scanner already ran")
	}
	s.ran = true

	workers := s.cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	// Buffered for the whole port list so workers never block on a slow
	// consumer and cancellation cannot strand an in-flight result.
	results := make(chan PortResult, len(s.ports))

	go func() {
		defer close(results)

		sem := semaphore.NewWeighted(int64(workers))
		var wg sync.WaitGroup
		cancelled := false

		// Single dispatch loop drains the worklist, so no port can be
		// claimed twice. Acquire blocks while all slots are busy and
		// observes ctx both there and between dispatches.
		for _, p := range s.ports {
			if err := sem.Acquire(ctx, 1); err != nil {
				cancelled = true
				break
			}
			wg.Add(1)
			go func(port uint16) {
				defer wg.Done()
				defer sem.Release(1)

				res := ProbePort(s.target, port, s.cfg.Timeout)
				s.tracker.Record(res)

				// Progress always reflects reality; only the emitted
				// stream is filtered.
				if !s.cfg.ShowClosed && (res.State == StateClosed || res.State == StateFiltered) {
					return
				}
				s.mu.Lock()
				s.emitted = append(s.emitted, res)
				s.mu.Unlock()
				results <- res
			}(p)
		}

		wg.Wait()
		s.mu.Lock()
		if cancelled {
			s.status = StatusCancelled
		}
		s.mu.Unlock()
	}()

	return results, nil
}

// Status reports the terminal outcome. Valid once the Run channel has
// closed.
func (s *Scanner) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Summary returns every emitted result sorted ascending by port, for
// the authoritative end-of-run view. The live stream stays in
// completion order; this is the one place ordering is imposed. Valid
// once the Run channel has closed.
func (s *Scanner) Summary() []PortResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PortResult, len(s.emitted))
	copy(out, s.emitted)
	sort.Slice(out, func(i, j int) bool { return out[i].Port < out[j].Port })
	return out
}
