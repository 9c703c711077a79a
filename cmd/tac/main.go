// Command tac reads an imperative source program from standard input
// and writes its three-address code translation to standard output.
package main

import (
	"os"

	"github.com/cwbudde/go-tac/cmd/tac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
