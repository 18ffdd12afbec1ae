// letterfall is a terminal typing-defense game: letters fall toward a
// city skyline and you destroy them by typing them before they land.
//
// Usage:
//
//	letterfall play          - Play in the current terminal
//	letterfall serve         - Start SSH server for remote play
//	letterfall scores        - Show best runs
//	letterfall config        - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.letterfall/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letterfall",
	Short: "Letterfall - Defend the city by typing falling letters",
	Long: `Letterfall is a terminal typing game. Letters rain down on a city
skyline; type them before they land to score points and save the
buildings. Reach the target score to win.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default configuration YAML

Examples:
  letterfall play
  letterfall play --difficulty hard
  letterfall serve --ssh :2222
  letterfall scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.letterfall/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
