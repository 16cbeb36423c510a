// Package main is the entry point for the schemabridge CLI.
package main

import (
	"os"

	"github.com/schemabridge-labs/schemabridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
