// textordie is a terminal word game: name words from a category to stack
// letter blocks before the rising water swallows the tower.
//
// Usage:
//
//	textordie play [category]        - Play (category picker when omitted)
//	textordie categories             - List categories and word counts
//	textordie words import <file>... - Import word files into the word bank
//	textordie words show <category>  - Print a category's words
//	textordie words remove <category> - Delete a category from the word bank
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible category picks
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where the game writes its log while running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textordie",
	Short: "Text or Die - name words before the water rises",
	Long: `Text or Die is a terminal word game. Each round asks for a word from a
category. Correct answers stack letter blocks into a tower; every answer
raises the water a little more. The game ends when the water reaches the
top of the tower.

Available commands:
  play        - Play, optionally pinning a category
  categories  - Show the available categories
  words       - Manage the SQLite word bank

Examples:
  textordie play
  textordie play fruits --difficulty hard
  textordie categories
  textordie words import ./cars.txt ./pack.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(wordsCmd)
}
