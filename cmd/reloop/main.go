// Command reloop rewrites JavaScript files so that every loop is a while
// loop and every branch and loop body is a block.
package main

import (
	"errors"
	"os"
)

// errFailed is returned by commands whose diagnostics were already printed.
var errFailed = errors.New("failed")

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			cmd.PrintErrln("error:", err)
		}
		os.Exit(1)
	}
}
