package main

import (
	"os"

	"aniresfr/cmd/aniresfr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
