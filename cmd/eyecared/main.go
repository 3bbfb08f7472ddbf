// Package main is the entry point for the eyecared reminder daemon.
package main

import (
	"os"

	"github.com/eyecare-io/eyecare/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
