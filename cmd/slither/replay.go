package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/slithertui/slither/internal/platform/tui"
	"github.com/slithertui/slither/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a journaled session",
	Long: `Replay a session from the journal, move for move.

The game is reseeded from the journal record and the recorded inputs
are re-applied on their original ticks, so the replay unfolds exactly
as the session was played.

Examples:
  slither replay 7
  slither replay 7 --db ./sessions.db`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid session ID %q\n", args[0])
		os.Exit(1)
	}

	if !terminalAttached() {
		fmt.Fprintln(os.Stderr, "Error: replay needs an interactive terminal")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := replaySession(store, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session %d: %v\n", id, err)
		os.Exit(1)
	}
}

// replaySession loads a journaled session and plays it back.
func replaySession(store *storage.Store, id int64) error {
	rec, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no such session")
	}

	trace, err := store.SessionTrace(id)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	tick := time.Duration(cfg.Timing.TickMs) * time.Millisecond

	return tui.RunReplay(*rec, trace, tick, newLogger())
}
