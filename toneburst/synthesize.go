package toneburst

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Synthesize renders the current burst slot as interleaved two-channel
// 16-bit samples: Averaging repetitions of Interval sample pairs, the
// same data on both channels.
//
// Within the burst the waveform is the fundamental plus an inverted
// second harmonic, y = cos(factor*j) - cos(2*factor*j), which starts
// and ends at zero and keeps spectral sidelobes low. The rest of each
// interval is silence.
func (s *Sequence) Synthesize() []int16 {
	shape := make([]float64, s.duration)
	for j := range shape {
		t := s.factor * float64(j)
		shape[j] = math.Cos(t) - math.Cos(2*t)
	}

	vecmath.ScaleBlockInPlace(shape, s.cfg.Amplitude)

	out := make([]int16, s.SlotLen())

	slot := out[:2*s.interval]
	for j, y := range shape {
		a := int16(y) // truncates toward zero, not rounded
		slot[2*j] = a
		slot[2*j+1] = a
	}

	for rep := 1; rep < s.cfg.Averaging; rep++ {
		copy(out[rep*2*s.interval:(rep+1)*2*s.interval], slot)
	}

	return out
}
