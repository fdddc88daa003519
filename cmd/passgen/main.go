package main

import (
	"os"

	"github.com/vaultpass/passgen-go/internal/commands"
)

func main() {
	if err := commands.NewApp().Execute(); err != nil {
		os.Exit(1)
	}
}
