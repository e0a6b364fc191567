// Command tbgen generates a wave format sound file containing tone
// bursts intended to be transmitted from a point source in free-field
// conditions.
//
// Usage:
//
//	tbgen [flags] outfile.wav [delay [numAvg [startFreq [sweep|polar]]]]
//
// Wave data is written to the named file; a text description of every
// burst goes to stdout, which you should redirect to keep alongside
// the recording. Flags expose the fixed measurement constants:
//
//	tbgen --interval 44100 outfile.wav 0 4 100 sweep
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
	fmt.Fprintln(os.Stderr, "Usage: tbgen [flags] outfile.wav [delay [numAvg [startFreq [sweep|polar]]]]")
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

	outfile, err := os.Create(opts.Path)
	if err != nil {
		log.Error("failed to open output file", "path", opts.Path, "err", err)
		os.Exit(exitOpen)
	}

	hdr := wavio.NewStereo16Header(*sampleRate, uint32(seq.DataSize()))

	_, err = hdr.WriteTo(outfile)
	if err != nil {
		log.Error("failed to write header info to disk", "err", err)
		os.Exit(exitHeader)
	}

	report.Intro(os.Stdout, os.Args[0], len(args), opts.Path)
	report.Setup(os.Stdout, seq)
	report.GeneratorColumns(os.Stdout)

	// one delay time of silence before the first burst
	err = wavio.WriteSilence(outfile, seq.Delay())
	if err != nil {
		log.Error("failed to write tone bursts to disk", "err", err)
		os.Exit(exitStream)
	}

	for ; seq.Good(); seq.Next() {
		err = wavio.WriteSamples(outfile, seq.Synthesize())
		if err != nil {
			log.Error("failed to write tone bursts to disk", "err", err)
			os.Exit(exitStream)
		}

		report.Detail(os.Stdout, seq)
		fmt.Fprintln(os.Stdout)
	}

	err = seq.Err()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(exitConfig)
	}

	err = outfile.Close()
	if err != nil {
		log.Error("failed to write tone bursts to disk", "err", err)
		os.Exit(exitStream)
	}
}
