package main

import (
	"os"

	"github.com/luuuc/readmegen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
