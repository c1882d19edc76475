package main

import (
	"os"

	"github.com/npsups/pension-calculator/cmd/pensioncalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
