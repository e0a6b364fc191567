// Command tban parses and analyzes a wave format sound file containing
// measured data corresponding to tone bursts transmitted from a point
// source in free-field conditions.
//
// Usage:
//
//	tban [flags] infile.wav [delay [numAvg [startFreq [sweep|polar]]]]
//
// The analysis parameters must match the ones the file was generated
// with; the container header is dumped for inspection but the burst
// geometry comes from the command line, so a capture recorded through
// other equipment is still analyzable. Results go to stdout as one
// tab-separated line per burst.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-toneburst/internal/cli"
	"github.com/cwbudde/algo-toneburst/internal/report"
	"github.com/cwbudde/algo-toneburst/toneburst"
	"github.com/cwbudde/algo-toneburst/wavio"
)

// Exit codes, one per failure kind.
const (
	exitUsage  = 1
	exitOpen   = 2
	exitHeader = 3
	exitStream = 4
	exitConfig = 5
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tban [flags] infile.wav [delay [numAvg [startFreq [sweep|polar]]]]")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	pflag.PrintDefaults()
}

func main() {
	sampleRate := pflag.Int("sample-rate", toneburst.DefaultSampleRate, "samples per second")
	interval := pflag.Int("interval", toneburst.DefaultInterval, "sample pairs per burst slot")
	minBurst := pflag.Int("min-burst", toneburst.DefaultMinBurst, "minimum burst length in samples")
	amplitude := pflag.Float64("amplitude", toneburst.DefaultAmplitude, "peak sample value for 0 dB")
	pflag.Usage = usage
	pflag.Parse()

	args := pflag.Args()

	opts, err := cli.Parse(args, cli.Options{Delay: *interval, Averaging: 1})
	if err != nil {
		log.Error("bad arguments", "err", err)
		usage()
		os.Exit(exitUsage)
	}

	seq, err := toneburst.New(toneburst.Config{
		SampleRate: *sampleRate,
		Interval:   *interval,
		MinBurst:   *minBurst,
		Amplitude:  *amplitude,
		Averaging:  opts.Averaging,
		StartFreq:  opts.StartFreq,
		Delay:      opts.Delay,
		Mode:       opts.Mode,
	})
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(exitConfig)
	}

	infile, err := os.Open(opts.Path)
	if err != nil {
		log.Error("failed to open input file", "path", opts.Path, "err", err)
		os.Exit(exitOpen)
	}
	defer infile.Close()

	hdr, err := wavio.ReadHeader(infile)
	if err != nil {
		log.Error("failed to read header info from disk", "err", err)
		os.Exit(exitHeader)
	}

	report.Intro(os.Stdout, os.Args[0], len(args), opts.Path)
	hdr.Dump(os.Stdout)
	report.Setup(os.Stdout, seq)
	report.AnalyzerColumns(os.Stdout)

	// discard one delay time before the first burst
	err = wavio.SkipSamples(infile, seq.Delay())
	if err != nil {
		log.Error("failed to read tone bursts from disk", "err", err)
		os.Exit(exitStream)
	}

	slot := make([]int16, seq.SlotLen())

	for ; seq.Good(); seq.Next() {
		err = wavio.ReadSamples(infile, slot)
		if err != nil {
			log.Error("failed to read tone bursts from disk", "err", err)
			os.Exit(exitStream)
		}

		res, err := seq.Correlate(slot)
		if err != nil {
			log.Error("failed to analyze tone burst", "err", err)
			os.Exit(exitStream)
		}

		report.Detail(os.Stdout, seq)
		report.Measurement(os.Stdout, res)
	}

	err = seq.Err()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(exitConfig)
	}
}
