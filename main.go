package main

import (
	"os"

	"github.com/balajinix/avani-academy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
