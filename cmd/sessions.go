package cmd

import (
	"fmt"
	"os"
	"time"

	"ctxkeep/internal/store"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(showCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions with preserved context",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openRecords()
		if err != nil {
			return err
		}

		idx, err := st.LoadSummary()
		if err != nil || len(idx.Sessions) == 0 {
			fmt.Println("No preserved context yet — the precompact hook writes it automatically.")
			return nil
		}

		fmt.Printf("%-38s %-20s %s\n", "SESSION", "LAST PRESERVED", "ITEMS")
		fmt.Println("─────────────────────────────────────────────────────────────────")
		// Newest sessions sit at the back of the index; list them first.
		for i := len(idx.Sessions) - 1; i >= 0; i-- {
			e := idx.Sessions[i]
			fmt.Printf("%-38s %-20s %d\n", e.SessionID, shortTime(e.LastPreservedAt), e.ItemCount)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the most recent preserved record for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openRecords()
		if err != nil {
			return err
		}

		rec, err := st.LatestRecord(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Session:   %s\n", rec.SessionID)
		fmt.Printf("Preserved: %s\n", shortTime(rec.PreservedAt))
		fmt.Printf("Items:     %d\n\n", rec.ItemCount)
		for _, it := range rec.Items {
			fmt.Printf("[%s] %s\n\n", it.Category, truncateShow(it.Content, 200))
		}
		return nil
	},
}

func openRecords() (*store.RecordStore, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	st := store.NewRecordStore(dir)
	if _, err := os.Stat(st.Dir()); os.IsNotExist(err) {
		return nil, fmt.Errorf("no %s directory here — the 'ctxkeep hook precompact' hook creates it on first preservation", store.DirName)
	}
	return st, nil
}

func shortTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04")
}

func truncateShow(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
