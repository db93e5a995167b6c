// Command floatdock inspects and demonstrates floating and docked layouts.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/floatdock/cmd/floatdock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
