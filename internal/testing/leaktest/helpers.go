// Package leaktest detects goroutines left running by concurrent code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle bounds how long Check waits for finished goroutines to exit
const (
	settleTimeout  = 500 * time.Millisecond
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines are still running
// once the count has had settleTimeout to come back down
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitAtMost(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines run, failing on timeout
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current := waitAtMost(target, timeout); current > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

// waitAtMost polls until the goroutine count drops to target or timeout
// passes, returning the last observed count
func waitAtMost(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target || time.Now().After(deadline) {
			return current
		}
		time.Sleep(settleInterval)
	}
}
