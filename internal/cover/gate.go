package cover

import (
	"sync/atomic"
	"time"
)

// Gate is the single cancellation/deadline predicate (C7) polled at every
// point spec §4.4/§4.5 mark `gate`: the top of each outer iteration, each
// inner iteration, and each recursive call. It fires when either a stop
// request has been observed or the accumulated CPU time since start
// exceeds the configured soft limit (spec §4.7, §5).
type Gate struct {
	stop      *atomic.Bool
	deadline  time.Duration
	hasLimit  bool
	startCPU  time.Duration
}

// NewGate constructs a Gate. stop may be nil, in which case the Gate owns
// its own flag (accessible via Stop()). A zero limit means no deadline.
func NewGate(stop *atomic.Bool, limit time.Duration) *Gate {
	if stop == nil {
		stop = &atomic.Bool{}
	}
	return &Gate{
		stop:     stop,
		deadline: limit,
		hasLimit: limit > 0,
		startCPU: processCPUTime(),
	}
}

// Stop sets the stop flag. Safe to call concurrently with Fired (spec §5:
// "write-once-true from the producer's perspective").
func (g *Gate) Stop() { g.stop.Store(true) }

// Stopped reports whether Stop has been called.
func (g *Gate) Stopped() bool { return g.stop.Load() }

// Fired evaluates the gate predicate: true iff stopped or the CPU time
// budget has been exceeded. The limit is a soft deadline, per spec §5:
// the search may overrun by the cost of one gate-to-gate step.
func (g *Gate) Fired() bool {
	if g.stop.Load() {
		return true
	}
	if !g.hasLimit {
		return false
	}
	return g.ElapsedCPU() > g.deadline
}

// TimeLimitReached reports whether the CPU time limit specifically (not
// the stop flag) has been exceeded. Result.Stopped and
// Result.TimeLimitReached are recorded independently (spec §4.7).
func (g *Gate) TimeLimitReached() bool {
	return g.hasLimit && g.ElapsedCPU() > g.deadline
}

// ElapsedCPU returns the process CPU time consumed since the gate was
// constructed.
func (g *Gate) ElapsedCPU() time.Duration {
	return processCPUTime() - g.startCPU
}
