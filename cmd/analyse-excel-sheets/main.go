// Package main provides the CLI entry point for analyse-excel-sheets.
package main

import (
	"os"

	"github.com/Olleman82/analyse-excel-sheets/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
