// Package main is the entry point for the cupcake order CLI.
package main

import (
	"os"

	"github.com/jask/cupcake/cmd/cupcake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
