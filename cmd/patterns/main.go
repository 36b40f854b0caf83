// Command patterns runs the design-pattern catalogue from the command
// line.
package main

import (
	"fmt"
	"os"

	"github.com/zheny5/gopatterns/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
