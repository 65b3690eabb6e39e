// slither is a terminal snake game with deterministic, replayable sessions.
//
// Usage:
//
//	slither play             - Play in the terminal
//	slither serve            - Start SSH server for remote play
//	slither sessions         - Browse the session journal
//	slither replay <id>      - Replay a journaled session
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set journal path (default: ~/.slither/sessions.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slithertui/slither/internal/config"
)

var (
	// Global flags
	flagSeed   uint32
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Slither - Snake in your terminal, with replayable sessions",
	Long: `Slither is a terminal snake game. Every run is journaled with its RNG
seed and input trace, so any session can be replayed move for move.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  sessions - Browse the session journal
  replay   - Replay a journaled session

Examples:
  slither play
  slither play --basic
  slither play --seed 44257
  slither serve --ssh :2222
  slither sessions
  slither replay 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = built-in default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/sessions.db", "Path to session journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig resolves the runtime configuration from the global flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
