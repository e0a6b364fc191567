// Package toneburst models sequences of windowed sinusoidal tone
// bursts used to measure the frequency response of an acoustic
// transducer in free-field conditions.
//
// A sequence steps through a ladder of nominal frequencies, either a
// geometric sweep (100 bursts per decade across two decades) or a
// single fixed frequency repeated for a polar-pattern measurement.
// For each burst the nominal frequency is quantized: the smallest
// whole number of sine cycles meeting the minimum burst length is
// packed into a whole number of samples, and the frequency is nudged
// to the value that completes those cycles exactly within the
// truncated duration. The quantized frequency drives both synthesis
// (a fundamental with an inverted second harmonic, giving a burst
// envelope that starts and ends at zero) and analysis (a
// single-frequency matched filter with a trailing background-noise
// window of equal length).
//
// # Usage
//
// Generate a sweep and measure it back:
//
//	seq, err := toneburst.New(toneburst.Config{})
//	if err != nil {
//	    // configuration cannot fit a burst into the interval budget
//	}
//	for ; seq.Good(); seq.Next() {
//	    slot := seq.Synthesize()
//	    // ... play slot through the system under test, record it ...
//	    res, err := seq.Correlate(recorded)
//	    // res.Abs1_dB is the channel 1 response at seq.ActualFreq()
//	}
//
// The sequence performs no I/O; container framing lives in the wavio
// package and file handling in the command front-ends.
package toneburst
