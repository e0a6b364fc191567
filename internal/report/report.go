// Package report writes the text reports shared by the tone-burst
// front-ends. All output is tab-separated so a redirected report
// loads straight into a spreadsheet; floats print with six
// significant digits.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-toneburst/toneburst"
)

// Intro identifies the running program, its argument count and the
// file being worked on.
func Intro(w io.Writer, exe string, argc int, path string) {
	fmt.Fprintf(w, "executable:\t%s\n", exe)
	fmt.Fprintf(w, " arguments:\t%d\n", argc)
	fmt.Fprintf(w, " file name:\t%s\n", path)
}

// Setup summarizes the sequence parameters and the resulting sample
// stream size.
func Setup(w io.Writer, seq *toneburst.Sequence) {
	size := seq.DataSize()

	fmt.Fprintf(w, "      mode:\t%s\n", seq.Mode())
	fmt.Fprintf(w, "start freq:\t%.6g\n", seq.StartFreq())
	fmt.Fprintf(w, "  end freq:\t%.6g\n", seq.StopFreq())
	fmt.Fprintf(w, " num steps:\t%d\n", seq.Steps())
	fmt.Fprintf(w, " averaging:\t%d\n", seq.Averaging())
	fmt.Fprintf(w, "     delay:\t%d\n", seq.Delay())
	fmt.Fprintf(w, "  interval:\t%d\n", seq.Interval())
	fmt.Fprintf(w, " data size:\t%s (%s bytes)\n",
		humanize.Bytes(uint64(size)), humanize.Comma(size))
}

// GeneratorColumns prints the column headers of the generator report.
func GeneratorColumns(w io.Writer) {
	fmt.Fprintln(w, "numCyc\tduration\tnomFreq\tactFreq")
}

// AnalyzerColumns prints the column headers of the analyzer report.
func AnalyzerColumns(w io.Writer) {
	fmt.Fprintln(w, "numCyc\tduration\tnomFreq\tactFreq"+
		"\tabs 1\tabs 2\tdB 1\tdB 2\tdB diff"+
		"\tphase 1\tphase 2\tphase diff\tbkg 1\tbkg 2")
}

// Detail prints the burst geometry columns, without a newline so the
// analyzer can extend the line.
func Detail(w io.Writer, seq *toneburst.Sequence) {
	fmt.Fprintf(w, "%d\t%d\t%.6g\t%.6g",
		seq.Cycles(), seq.Duration(), seq.NominalFreq(), seq.ActualFreq())
}

// Measurement prints the correlation result columns and ends the line.
func Measurement(w io.Writer, res toneburst.Result) {
	fmt.Fprintf(w, "\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
		res.Abs1, res.Abs2,
		res.Abs1_dB, res.Abs2_dB, res.Diff_dB,
		res.Phase1, res.Phase2, res.PhaseDiff,
		res.Background1_dB, res.Background2_dB)
}
