// Command tampio runs the Tampio interpreter: a source file given as the
// sole argument, or an interactive REPL if none is given.
package main

import (
	"fmt"
	"os"

	"github.com/tampio-lang/tampio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
