package stub

import (
	"math/rand"
	"time"
)

// Delay describes how long to hold a response before it becomes deliverable.
// The zero value delivers immediately.
type Delay struct {
	lo time.Duration
	hi time.Duration
}

// FixedDelay holds a response for exactly d.
func FixedDelay(d time.Duration) Delay {
	return Delay{lo: d, hi: d}
}

// IntervalDelay holds a response for a uniformly random duration in [lo, hi).
// The bounds are swapped if given in the wrong order; equal bounds behave
// like FixedDelay.
func IntervalDelay(lo, hi time.Duration) Delay {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Delay{lo: lo, hi: hi}
}

// Wait draws the concrete duration for one materialization.
func (d Delay) Wait() time.Duration {
	if d.lo == d.hi {
		return d.lo
	}
	return d.lo + time.Duration(rand.Int63n(int64(d.hi-d.lo)))
}
