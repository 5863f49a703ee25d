// Package main is the numkit command.
package main

import (
	"os"

	"numkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
