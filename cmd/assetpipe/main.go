// Package main provides the assetpipe CLI tool for fingerprinting static
// web assets.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
