package main

import (
	"os"

	"github.com/rogerio-castellano/inventory-manager/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
