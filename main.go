package main

import (
	"os"

	"github.com/seedkit/hrseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
