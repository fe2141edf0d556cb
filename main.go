package main

import (
	"os"

	"github.com/pygrounds/adaptive/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
