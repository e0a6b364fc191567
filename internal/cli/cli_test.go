package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-toneburst/toneburst"
)

func TestParse(t *testing.T) {
	defaults := Options{Delay: 22050, Averaging: 1}

	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			"path only keeps defaults",
			[]string{"out.wav"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 1},
		},
		{
			"delay",
			[]string{"out.wav", "0"},
			Options{Path: "out.wav", Delay: 0, Averaging: 1},
		},
		{
			"delay and averaging",
			[]string{"out.wav", "44100", "4"},
			Options{Path: "out.wav", Delay: 44100, Averaging: 4},
		},
		{
			"start frequency",
			[]string{"out.wav", "22050", "2", "250.5"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 2, StartFreq: 250.5},
		},
		{
			"polar mode",
			[]string{"out.wav", "22050", "1", "1000", "polar"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 1, StartFreq: 1000, Mode: toneburst.ModePolar},
		},
		{
			"single letter selects polar",
			[]string{"out.wav", "22050", "1", "1000", "P"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 1, StartFreq: 1000, Mode: toneburst.ModePolar},
		},
		{
			"sweep keyword",
			[]string{"out.wav", "22050", "1", "1000", "sweep"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 1, StartFreq: 1000, Mode: toneburst.ModeSweep},
		},
		{
			"unrecognized mode falls back to sweep",
			[]string{"out.wav", "22050", "1", "1000", "circle"},
			Options{Path: "out.wav", Delay: 22050, Averaging: 1, StartFreq: 1000, Mode: toneburst.ModeSweep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args, defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"a", "1", "1", "100", "sweep", "extra"}},
		{"non-numeric delay", []string{"out.wav", "soon"}},
		{"negative delay", []string{"out.wav", "-1"}},
		{"non-numeric averaging", []string{"out.wav", "0", "many"}},
		{"zero averaging", []string{"out.wav", "0", "0"}},
		{"non-numeric frequency", []string{"out.wav", "0", "1", "low"}},
		{"zero frequency", []string{"out.wav", "0", "1", "0"}},
		{"negative frequency", []string{"out.wav", "0", "1", "-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, Options{Averaging: 1})
			assert.Error(t, err)
		})
	}
}
