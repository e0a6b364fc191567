// Package cli parses the positional argument cascade shared by the
// tone-burst generator and analyzer:
//
//	prog file.wav [delay [numAvg [startFreq [sweep|polar]]]]
//
// Later arguments require all earlier ones; absent arguments keep the
// defaults supplied by the caller. The count is validated once and
// fields are filled top-down.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-toneburst/toneburst"
)

// Options holds the parsed positional arguments.
type Options struct {
	Path      string
	Delay     int
	Averaging int
	StartFreq float64 // 0 selects the mode-dependent default
	Mode      toneburst.Mode
}

// Parse fills opts from the positional arguments. The returned error
// is a usage error; the caller should print usage and exit.
func Parse(args []string, defaults Options) (Options, error) {
	if len(args) < 1 || len(args) > 5 {
		return Options{}, fmt.Errorf("cli: expected 1 to 5 arguments, got %d", len(args))
	}

	opts := defaults
	opts.Path = args[0]

	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			return Options{}, fmt.Errorf("cli: invalid delay %q", args[1])
		}

		opts.Delay = v
	}

	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 1 {
			return Options{}, fmt.Errorf("cli: invalid averaging count %q", args[2])
		}

		opts.Averaging = v
	}

	if len(args) > 3 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil || v <= 0 {
			return Options{}, fmt.Errorf("cli: invalid start frequency %q", args[3])
		}

		opts.StartFreq = v
	}

	if len(args) > 4 {
		// anything starting with p selects polar, all else sweeps
		if strings.HasPrefix(strings.ToUpper(args[4]), "P") {
			opts.Mode = toneburst.ModePolar
		} else {
			opts.Mode = toneburst.ModeSweep
		}
	}

	return opts, nil
}
