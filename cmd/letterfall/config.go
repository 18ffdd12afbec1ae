package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration to stdout.

Save it to ~/.letterfall/configs/letterfall.yaml (or pass a copy via
'play --config') and edit values to tune the game.

Example:
  letterfall config > my-letterfall.yaml
  letterfall play --config my-letterfall.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.GetDefaultYAML("letterfall")))
	},
}
