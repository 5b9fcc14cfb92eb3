package main

import (
	"os"

	"github.com/clyra-ai/wrkr-docs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
