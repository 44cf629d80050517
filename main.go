package main

import (
	"os"

	"github.com/abhisek/musclequiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
