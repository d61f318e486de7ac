package main

import (
	"os"

	"keytree/cmd/keytree/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
