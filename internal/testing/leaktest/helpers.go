// Package leaktest holds test helpers that catch goroutines left running after a test
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleTimeout = 500 * time.Millisecond

// GoroutineChecker compares the goroutine count before and after a block of work
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Leaked returns how many goroutines above the baseline are still running
// once they have had settleTimeout to exit
func (g *GoroutineChecker) Leaked(tolerance int) int {
	deadline := time.Now().Add(settleTimeout)
	for {
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance || time.Now().After(deadline) {
			return leaked
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Check fails the test when more than tolerance goroutines are left over
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked := g.Leaked(tolerance); leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)", g.before, leaked, tolerance)
	}
}
