package main

import (
	"os"

	"github.com/msto63/mEX/cmd/mex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
