package portscan

import "sync/atomic"

// Tracker counts completed probes across concurrent workers. It never
// writes output itself; the display layer polls Snapshot.
type Tracker struct {
	total     int64
	attempted atomic.Int64
	open      atomic.Int64
}

// NewTracker creates a tracker for a scan of total ports.
func NewTracker(total int) *Tracker {
	return &Tracker{total: int64(total)}
}

// Record counts one completed probe. Called exactly once per probe,
// from whichever worker finished it.
func (t *Tracker) Record(res PortResult) {
	// attempted before open; paired with the reverse load order in
	// Snapshot so a reader never observes open > attempted.
	t.attempted.Add(1)
	if res.State == StateOpen {
		t.open.Add(1)
	}
}

// Snapshot returns a consistent point-in-time copy of the counters.
func (t *Tracker) Snapshot() ProgressSnapshot {
	open := t.open.Load()
	return ProgressSnapshot{
		Attempted: t.attempted.Load(),
		Open:      open,
		Total:     t.total,
	}
}
