package main

import (
	"os"

	"github.com/pds-go/skeleton/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
