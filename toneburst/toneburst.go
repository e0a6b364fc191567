package toneburst

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by sequence construction, stepping and correlation.
var (
	ErrInvalidSampleRate = errors.New("toneburst: sample rate must be positive")
	ErrInvalidInterval   = errors.New("toneburst: interval must be positive")
	ErrInvalidMinBurst   = errors.New("toneburst: minimum burst length must be positive")
	ErrInvalidAmplitude  = errors.New("toneburst: amplitude must be positive")
	ErrInvalidStartFreq  = errors.New("toneburst: start frequency must be positive")
	ErrInvalidAveraging  = errors.New("toneburst: averaging count must be positive")
	ErrInvalidDelay      = errors.New("toneburst: delay must not be negative")
	ErrBurstTooLong      = errors.New("toneburst: burst duration exceeds interval budget")
	ErrShortRecord       = errors.New("toneburst: sample record shorter than one burst slot")
)

// Mode selects the frequency stepping policy.
type Mode int

const (
	// ModeSweep steps bursts geometrically from the start frequency
	// to 10 kHz, 100 bursts per decade.
	ModeSweep Mode = iota

	// ModePolar repeats bursts at one fixed frequency, with the
	// interval budget doubled so a measurement turntable can settle
	// between bursts.
	ModePolar
)

func (m Mode) String() string {
	if m == ModePolar {
		return "polar plot"
	}

	return "freq sweep"
}

// Default configuration values, matching the measurement setup the
// container format was designed around.
const (
	DefaultSampleRate = 44100   // samples per second
	DefaultInterval   = 22050   // sample pairs per burst slot
	DefaultMinBurst   = 100     // minimum burst length, 2.27 ms
	DefaultAmplitude  = 12000.0 // peak sample value for 0 dB

	// DefaultSweepStartFreq and DefaultPolarStartFreq apply when
	// Config.StartFreq is zero.
	DefaultSweepStartFreq = 100.0
	DefaultPolarStartFreq = 1000.0

	sweepBursts   = 201
	sweepStopFreq = 10000.0
	polarBursts   = 72
)

// Config holds sequence parameters. Zero values select the defaults
// above, except Delay, where zero is a valid setting of no leading
// silence.
type Config struct {
	SampleRate int     // samples per second per channel
	Interval   int     // sample pairs per burst slot (burst plus silence)
	MinBurst   int     // minimum burst length in samples
	Amplitude  float64 // peak level corresponding to 0 dB
	Averaging  int     // repetitions of each burst slot
	StartFreq  float64 // first (sweep) or only (polar) frequency in Hz
	Delay      int     // silent sample pairs before the first burst
	Mode       Mode
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}

	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}

	if cfg.MinBurst == 0 {
		cfg.MinBurst = DefaultMinBurst
	}

	if cfg.Amplitude == 0 {
		cfg.Amplitude = DefaultAmplitude
	}

	if cfg.Averaging == 0 {
		cfg.Averaging = 1
	}

	if cfg.StartFreq == 0 {
		if cfg.Mode == ModePolar {
			cfg.StartFreq = DefaultPolarStartFreq
		} else {
			cfg.StartFreq = DefaultSweepStartFreq
		}
	}

	return cfg
}

func (cfg Config) validate() error {
	switch {
	case cfg.SampleRate < 0:
		return ErrInvalidSampleRate
	case cfg.Interval < 0:
		return ErrInvalidInterval
	case cfg.MinBurst < 0:
		return ErrInvalidMinBurst
	case cfg.Amplitude < 0 || math.IsNaN(cfg.Amplitude) || math.IsInf(cfg.Amplitude, 0):
		return ErrInvalidAmplitude
	case cfg.Averaging < 0:
		return ErrInvalidAveraging
	case cfg.StartFreq < 0 || math.IsNaN(cfg.StartFreq) || math.IsInf(cfg.StartFreq, 0):
		return ErrInvalidStartFreq
	case cfg.StartFreq >= float64(cfg.SampleRate)/2:
		// above Nyquist no whole cycle fits a representable burst
		return ErrInvalidStartFreq
	case cfg.Delay < 0:
		return ErrInvalidDelay
	}

	return nil
}

// Sequence owns the burst stepping state and the synthesis and
// correlation algorithms. It performs no I/O.
//
// A Sequence is not safe for concurrent use. Stepping is cheap and
// strictly sequential; per-burst synthesis and correlation carry no
// state across bursts other than the current frequency.
type Sequence struct {
	cfg Config

	interval  int // sample pairs per slot, doubled in polar mode
	total     int
	remaining int
	cycles    int
	duration  int

	nominal float64
	actual  float64
	stop    float64
	ratio   float64
	factor  float64 // 2π · actual / sampleRate

	err error
}

// New builds a sequence for the configured mode and resets it to the
// first burst.
func New(cfg Config) (*Sequence, error) {
	cfg = normalizeConfig(cfg)

	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	s := &Sequence{cfg: cfg, interval: cfg.Interval}
	if cfg.Mode == ModePolar {
		s.interval = 2 * cfg.Interval
	}

	err = s.Reset()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Reset rewinds the sequence to the first burst, rebuilding the
// frequency ladder for the current mode. It must complete without
// error before the first Next.
func (s *Sequence) Reset() error {
	s.err = nil
	s.cycles = 1
	s.nominal = s.cfg.StartFreq

	switch s.cfg.Mode {
	case ModePolar:
		s.total = polarBursts
		s.stop = s.cfg.StartFreq
		s.ratio = 1.0
	default:
		s.total = sweepBursts
		s.stop = sweepStopFreq
		s.ratio = math.Pow(s.stop/s.cfg.StartFreq, 1.0/float64(s.total-1))
	}

	s.remaining = s.total

	return s.calc()
}

// calc quantizes the current nominal frequency: the least number of
// whole cycles meeting the minimum burst length, the truncated sample
// duration, and the frequency that completes those cycles exactly
// within it. The cycle count search never restarts between bursts;
// sweep frequencies only rise, so the required count never falls.
func (s *Sequence) calc() error {
	period := float64(s.cfg.SampleRate) / s.nominal
	for period*float64(s.cycles) < float64(s.cfg.MinBurst) {
		s.cycles++
	}

	s.duration = int(period * float64(s.cycles))
	s.actual = float64(s.cfg.SampleRate) * float64(s.cycles) / float64(s.duration)
	s.factor = 2 * math.Pi * s.actual / float64(s.cfg.SampleRate)

	if s.duration > s.interval {
		s.err = fmt.Errorf("%w: %d samples at %.6g Hz, interval %d",
			ErrBurstTooLong, s.duration, s.nominal, s.interval)
		return s.err
	}

	return nil
}

// Next advances to the next burst: in sweep mode the nominal
// frequency is multiplied by the step ratio and requantized, in polar
// mode only the remaining count drops. It reports false once the
// sequence is exhausted, without touching frequency state.
func (s *Sequence) Next() bool {
	if s.err != nil || s.remaining <= 0 {
		return false
	}

	if s.cfg.Mode == ModeSweep {
		s.nominal *= s.ratio

		err := s.calc()
		if err != nil {
			return false
		}
	}

	s.remaining--

	return true
}

// Good reports whether bursts remain.
func (s *Sequence) Good() bool {
	return s.err == nil && s.remaining > 0
}

// Err returns the error latched by a failed requantization, if any.
func (s *Sequence) Err() error { return s.err }

// DataSize returns the byte count of the full generated sample
// stream: 16-bit stereo pairs for every burst slot plus the leading
// delay.
func (s *Sequence) DataSize() int64 {
	pairs := int64(s.interval)*int64(s.cfg.Averaging)*int64(s.total) + int64(s.cfg.Delay)
	return 2 * 2 * pairs
}

// SlotLen returns the number of interleaved samples in one burst slot
// (both channels, all averaging repetitions).
func (s *Sequence) SlotLen() int {
	return 2 * s.interval * s.cfg.Averaging
}

// Cycles returns the number of whole sine cycles in the current burst.
func (s *Sequence) Cycles() int { return s.cycles }

// Duration returns the current burst length in samples.
func (s *Sequence) Duration() int { return s.duration }

// NominalFreq returns the current target frequency in Hz.
func (s *Sequence) NominalFreq() float64 { return s.nominal }

// ActualFreq returns the quantized frequency that fits a whole number
// of cycles into Duration samples.
func (s *Sequence) ActualFreq() float64 { return s.actual }

// StartFreq returns the first (sweep) or only (polar) frequency.
func (s *Sequence) StartFreq() float64 { return s.cfg.StartFreq }

// StopFreq returns the last frequency of the ladder.
func (s *Sequence) StopFreq() float64 { return s.stop }

// Steps returns the total number of bursts in the sequence.
func (s *Sequence) Steps() int { return s.total }

// Remaining returns the number of bursts not yet stepped past.
func (s *Sequence) Remaining() int { return s.remaining }

// Interval returns the sample pairs per burst slot, after the polar
// mode doubling.
func (s *Sequence) Interval() int { return s.interval }

// Averaging returns the number of slot repetitions per burst.
func (s *Sequence) Averaging() int { return s.cfg.Averaging }

// Delay returns the silent sample pairs preceding the first burst.
func (s *Sequence) Delay() int { return s.cfg.Delay }

// SampleRate returns the configured sample rate.
func (s *Sequence) SampleRate() int { return s.cfg.SampleRate }

// Mode returns the stepping policy.
func (s *Sequence) Mode() Mode { return s.cfg.Mode }

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// ratioTodB converts a linear ratio to decibels: 20 * log10(value).
// Returns -Inf for zero values.
func ratioTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(value)
}
