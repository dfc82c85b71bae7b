package main

import (
	"os"

	"github.com/Carmen-Shannon/atomvis-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
