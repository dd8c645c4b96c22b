package portscan

import "time"

// PortState classifies the outcome of a single probe.
type PortState int

const (
	StateOpen     PortState = iota // connection succeeded
	StateClosed                    // connection actively refused
	StateFiltered                  // no response within the timeout
	StateError                     // any other I/O failure
)

func (s PortState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFiltered:
		return "filtered"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Status is the run-level outcome of a scan, distinct from any
// individual probe's outcome.
type Status int

const (
	StatusCompleted Status = iota
	StatusCancelled
)

func (s Status) String() string {
	if s == StatusCancelled {
		return "cancelled"
	}
	return "completed"
}

// Target is an already-resolved scan target. Host is the name the
// caller supplied, IP its resolved numeric form.
type Target struct {
	Host string
	IP   string
}

// PortResult is the outcome of probing one port. Immutable once created.
type PortResult struct {
	Port    uint16
	State   PortState
	Elapsed time.Duration
	Service string // well-known service hint, set for open ports only
	Diag    string // failure description, set for StateError only
}

// ProgressSnapshot is a point-in-time copy of the scan counters.
type ProgressSnapshot struct {
	Attempted int64
	Open      int64
	Total     int64
}

// Config holds the per-scan options.
type Config struct {
	Timeout     time.Duration // per connect attempt, must be positive
	Concurrency int           // max in-flight probes, values < 1 mean 1
	ShowClosed  bool          // keep non-open results in the emitted stream
}
