package main

import (
	"os"

	"github.com/budgetis-dev/budgetis/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
