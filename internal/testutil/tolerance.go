// Package testutil provides shared helpers for toneburst tests:
// tolerance assertions and deterministic test signals.
package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got differs from want by more than eps
// (absolute tolerance).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireFinite fails t if any value is NaN or Inf.
func RequireFinite(t *testing.T, values ...float64) {
	t.Helper()

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("value %d: non-finite %v", i, v)
		}
	}
}
