package testutil

import (
	"testing"
	"time"
)

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

// NewTestTimer creates a new test timer
func NewTestTimer(name string) *TestTimer {
	return &TestTimer{
		start: time.Now(),
		name:  name,
	}
}

// Stop stops the timer and returns the duration
func (t *TestTimer) Stop() time.Duration {
	return time.Since(t.start)
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(t *testing.T, testName string, duration time.Duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	} else {
		t.Logf("✅ %s performance test passed: took %v (under %v limit)", testName, duration, maxDuration)
	}
}

// Timed runs fn and fails t when it takes longer than maxDuration.
func Timed(t *testing.T, name string, maxDuration time.Duration, fn func()) {
	t.Helper()
	timer := NewTestTimer(name)
	fn()
	PerformanceAssertion(t, name, timer.Stop(), maxDuration)
}
