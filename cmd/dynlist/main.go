// Package main provides the dynlist CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/dynlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
