package main

import (
	"os"
)

// Version is the flightinfo release.
const Version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
