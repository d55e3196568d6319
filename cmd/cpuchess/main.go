// cpuchess analyses positions and plays games with a fixed-depth search engine.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const programVersion = "0.1.0"

func main() {
	if err := execute(newRootCmd(os.Stdout, os.Stderr), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports any error on stderr.
func execute(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "cpuchess: %v\n", err)
	}
	return err
}
