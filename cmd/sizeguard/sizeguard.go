// Package executes sizeguard application.
package main

import (
	"os"

	"github.com/launchrctl/sizeguard"
)

func main() {
	os.Exit(sizeguard.Run())
}
