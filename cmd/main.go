// Package main is the entry point for the parcel command.
package main

import (
	"os"

	"github.com/guttosm/parcel-service/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
