package main

import (
	"os"

	"github.com/libertyflags/flaggy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
