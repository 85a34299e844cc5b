package main

import (
	"os"

	"github.com/wassat/website/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
