package toneburst

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// TestQuantizationProperties checks the calc invariants across the
// whole audio band: at least one cycle, at least the minimum burst
// length, never past the interval budget, and a whole number of
// cycles of the corrected frequency in the truncated duration.
func TestQuantizationProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq := rapid.Float64Range(20, 20000).Draw(t, "freq")

		seq, err := New(Config{Mode: ModePolar, StartFreq: freq})
		if err != nil {
			t.Fatalf("New(%g Hz): %v", freq, err)
		}

		if seq.Cycles() < 1 {
			t.Fatalf("Cycles() = %d, want >= 1", seq.Cycles())
		}

		if seq.Duration() < DefaultMinBurst {
			t.Fatalf("Duration() = %d, want >= %d", seq.Duration(), DefaultMinBurst)
		}

		if seq.Duration() > seq.Interval() {
			t.Fatalf("Duration() = %d exceeds interval %d", seq.Duration(), seq.Interval())
		}

		cycles := seq.ActualFreq() * float64(seq.Duration()) / float64(seq.SampleRate())
		if math.Abs(cycles-float64(seq.Cycles())) > 1e-6 {
			t.Fatalf("%v cycles of %g Hz in %d samples, want exactly %d",
				cycles, seq.ActualFreq(), seq.Duration(), seq.Cycles())
		}

		// truncation never moves the frequency down
		if seq.ActualFreq()+1e-9 < seq.NominalFreq() {
			t.Fatalf("ActualFreq() = %g below nominal %g", seq.ActualFreq(), seq.NominalFreq())
		}

		// one fewer cycle would undershoot the minimum length
		if seq.Cycles() > 1 {
			period := float64(seq.SampleRate()) / freq
			if period*float64(seq.Cycles()-1) >= float64(DefaultMinBurst) {
				t.Fatalf("Cycles() = %d is not minimal for %g Hz", seq.Cycles(), freq)
			}
		}
	})
}

// TestSweepStartProperties runs the same invariants over randomized
// sweep start frequencies, including the ladder endpoint.
func TestSweepStartProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Float64Range(50, 5000).Draw(t, "start")

		seq, err := New(Config{StartFreq: start})
		if err != nil {
			t.Fatalf("New(%g Hz): %v", start, err)
		}

		want := math.Pow(10000.0/start, 1.0/200.0)

		last := seq.NominalFreq()
		for seq.Next() {
			ratio := seq.NominalFreq() / last
			if seq.NominalFreq() != last && math.Abs(ratio-want) > 1e-9 {
				t.Fatalf("step ratio %v, want %v", ratio, want)
			}
			last = seq.NominalFreq()
		}
	})
}
