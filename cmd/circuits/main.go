// Command circuits solves the junction-box puzzle: it connects the closest
// pairs of 3-D points into circuits and prints both answers with timings.
//
// Usage:
//
//	circuits [input] [-k connections] [--top n] [-v]
//
// Part one multiplies the sizes of the --top largest circuits after the
// --connections closest pairs are joined (10 for the sample, 1000 for the
// real input). Part two multiplies the X coordinates of the pair whose
// connection first puts every box on one circuit.
package main

import "os"

var Version = "development"

func main() {
	if err := newRootCmd(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
