// Command nbodysim runs the Barnes-Hut n-body simulation end to end:
// load a generator description, expand it into a Field, advance it for
// a number of frames, and dump per-frame body positions to a directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
