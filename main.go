package main

import (
	"os"

	"github.com/mailcove/mailcove/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
