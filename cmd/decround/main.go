// Command decround rounds decimal numbers using one of the rounding modes
// of the decimal package.
//
// Usage:
//
//	decround [--mode MODE] [--scale N] [--verbose] [value ...]
//	decround modes
//
// Values are read from the arguments or, if there are none, one per line
// from the standard input. Defaults can be set with the DECROUND_MODE,
// DECROUND_SCALE and DECROUND_VERBOSE environment variables.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
