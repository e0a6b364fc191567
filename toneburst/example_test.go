package toneburst_test

import (
	"fmt"

	"github.com/cwbudde/algo-toneburst/toneburst"
)

func Example() {
	seq, err := toneburst.New(toneburst.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bursts from %g Hz to %g Hz\n", seq.Steps(), seq.StartFreq(), seq.StopFreq())
	fmt.Printf("first burst: %d cycle(s), %d samples at %g Hz\n",
		seq.Cycles(), seq.Duration(), seq.ActualFreq())

	// Output:
	// 201 bursts from 100 Hz to 10000 Hz
	// first burst: 1 cycle(s), 441 samples at 100 Hz
}
