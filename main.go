package main

import (
	"os"

	"github.com/skyops/fieldcoord/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
