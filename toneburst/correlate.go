package toneburst

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Result holds one burst's matched-filter measurement. Magnitudes are
// normalized so a full-scale capture of the synthesized burst reports
// 1.0 (0 dB); phases are in radians, referenced to the burst start.
//
//nolint:revive
type Result struct {
	Abs1    float64 // channel 1 magnitude
	Abs2    float64 // channel 2 magnitude
	Abs1_dB float64
	Abs2_dB float64
	Diff_dB float64 // channel 1 relative to channel 2

	Phase1    float64
	Phase2    float64
	PhaseDiff float64

	Background1_dB float64 // noise estimate near the slot end
	Background2_dB float64
}

// Correlate measures the current burst in a recorded slot of
// interleaved two-channel samples. Each channel's signal window is
// correlated against a complex exponential at the quantized burst
// frequency; a window of equal length ending one burst duration
// before the interval end yields the background estimate.
//
// samples must hold at least one full slot (SlotLen values); anything
// beyond that is ignored.
func (s *Sequence) Correlate(samples []int16) (Result, error) {
	if len(samples) < s.SlotLen() {
		return Result{}, fmt.Errorf("%w: got %d samples, need %d",
			ErrShortRecord, len(samples), s.SlotLen())
	}

	d := s.duration

	bgStart := s.interval - 2*d
	if bgStart < 0 {
		bgStart = 0
	}

	bgEnd := s.interval - d

	// Correlation kernels: e^(i*factor*j) split into real and
	// imaginary parts so each window sum becomes two dot products.
	cosTab := make([]float64, d)
	sinTab := make([]float64, d)

	for j := range cosTab {
		sinTab[j], cosTab[j] = math.Sincos(s.factor * float64(j))
	}

	// The background kernel keeps the absolute sample index so its
	// phase reference matches the signal window.
	bgCos := make([]float64, bgEnd-bgStart)
	bgSin := make([]float64, bgEnd-bgStart)

	for k := range bgCos {
		bgSin[k], bgCos[k] = math.Sincos(s.factor * float64(bgStart+k))
	}

	ch1 := make([]float64, s.interval)
	ch2 := make([]float64, s.interval)

	var sum1, sum2, sum3, sum4 complex128

	for rep := 0; rep < s.cfg.Averaging; rep++ {
		slot := samples[rep*2*s.interval:]
		for j := 0; j < s.interval; j++ {
			ch1[j] = float64(slot[2*j])
			ch2[j] = float64(slot[2*j+1])
		}

		sum1 += complex(vecmath.DotProduct(ch1[:d], cosTab), vecmath.DotProduct(ch1[:d], sinTab))
		sum2 += complex(vecmath.DotProduct(ch2[:d], cosTab), vecmath.DotProduct(ch2[:d], sinTab))
		sum3 += complex(vecmath.DotProduct(ch1[bgStart:bgEnd], bgCos), vecmath.DotProduct(ch1[bgStart:bgEnd], bgSin))
		sum4 += complex(vecmath.DotProduct(ch2[bgStart:bgEnd], bgCos), vecmath.DotProduct(ch2[bgStart:bgEnd], bgSin))
	}

	// Factor out sample count and averaging; a full-scale input at
	// the analyzed frequency then lands at magnitude 1.0.
	norm := complex(float64(d)*float64(s.cfg.Averaging)*s.cfg.Amplitude/2, 0)
	sum1 /= norm
	sum2 /= norm
	sum3 /= norm
	sum4 /= norm

	res := Result{
		Abs1:   cmplx.Abs(sum1),
		Abs2:   cmplx.Abs(sum2),
		Phase1: cmplx.Phase(sum1),
		Phase2: cmplx.Phase(sum2),
	}
	res.Abs1_dB = ampTodB(res.Abs1)
	res.Abs2_dB = ampTodB(res.Abs2)
	res.Diff_dB = ratioTodB(res.Abs1 / res.Abs2)
	res.PhaseDiff = res.Phase1 - res.Phase2
	res.Background1_dB = ampTodB(cmplx.Abs(sum3))
	res.Background2_dB = ampTodB(cmplx.Abs(sum4))

	return res, nil
}
