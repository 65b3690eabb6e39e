package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slithertui/slither/internal/platform/tui"
	"github.com/slithertui/slither/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse the session journal",
	Long: `Open an interactive browser over the journaled sessions.

Pick a session with Enter to replay it, or delete it with X.
With --plain the recent sessions are printed to stdout instead.
With --clear the whole journal is wiped.

Examples:
  slither sessions
  slither sessions --plain
  slither sessions --clear`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print recent sessions instead of the interactive browser")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled session and exit")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing session journal: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session journal cleared.")
		return
	}

	if flagPlain || !terminalAttached() {
		printSessions(store)
		return
	}

	selected, err := tui.RunSessionBrowser(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == 0 {
		return
	}

	if err := replaySession(store, selected); err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session %d: %v\n", selected, err)
		os.Exit(1)
	}
}

// printSessions writes the recent sessions as a text table.
func printSessions(store *storage.Store) {
	records, err := store.RecentSessions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slither play' to fill the journal!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-9s  %s\n", "ID", "Score", "Food", "Ticks", "Outcome", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-9s  %s\n", "--", "-----", "----", "-----", "-------", "----")

	for _, rec := range records {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-6d  %-7d  %-9s  %s\n",
			rec.ID, rec.Score, rec.FoodEaten, rec.Ticks, rec.Outcome, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d ticks played\n", stats.Sessions, stats.TotalTicks)
	}
}
