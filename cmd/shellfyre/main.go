package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/shellfyre/internal/handlers/cli"
	"github.com/AntonioJCosta/shellfyre/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
