// Package main provides the linklint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/linklint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
