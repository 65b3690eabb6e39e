package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	basic "github.com/slithertui/slither/internal/platform/term"
	"github.com/slithertui/slither/internal/platform/tui"
	"github.com/slithertui/slither/internal/storage"
)

var flagBasic bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD    - Steer
  Space/Enter/P  - Start, pause, resume
  R/Esc          - Abort to start screen, restart after game over
  Q/Ctrl+C       - Quit

The default front end journals every run; finished sessions can be
browsed with 'slither sessions' and replayed with 'slither replay'.
The --basic front end runs the plain fixed-rate loop without pause,
animations or journaling.

Examples:
  slither play
  slither play --seed 44257
  slither play --basic
  slither play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBasic, "basic", false, "Use the plain fixed-rate loop instead of the full front end")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !terminalAttached() {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger := newLogger()

	if flagBasic {
		if err := basic.Run(cfg, flagSeed, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Open the journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		// Continue without journaling - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalAttached reports whether stdout is a real terminal.
func terminalAttached() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newLogger builds the CLI logger. Interactive front ends own the
// screen, so logs go to stderr where the alternate buffer hides them
// until exit.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "slither",
	})
}
