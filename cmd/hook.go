package cmd

import (
	"fmt"
	"io"
	"os"

	"ctxkeep/internal/hook"
	"ctxkeep/internal/store"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookPreCompactCmd)
	hookCmd.AddCommand(hookSessionStartCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Lifecycle hook entry points for the host agent",
}

// The precompact hook must never block the host's own compaction: whatever
// goes wrong, diagnostics go to stderr and the process exits 0.
var hookPreCompactCmd = &cobra.Command{
	Use:   "precompact",
	Short: "Preserve context from the transcript payload on stdin",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ctxkeep: read payload: %v\n", err)
			return
		}

		payload, err := hook.ParsePayload(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ctxkeep: %v\n", err)
			return
		}

		workDir := payload.Cwd
		if workDir == "" {
			if workDir, err = os.Getwd(); err != nil {
				fmt.Fprintf(os.Stderr, "ctxkeep: resolve working dir: %v\n", err)
				return
			}
		}

		outcome := hook.Preserve(payload.SessionID, payload.Messages, workDir, lazyArchive{workDir})
		if outcome.Written {
			fmt.Fprintf(os.Stderr, "ctxkeep: preserved %d items for session %s\n", outcome.ItemCount, payload.SessionID)
		}
	},
}

var hookSessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Print a one-line summary of previously preserved context",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := os.Getwd()
		if err != nil {
			return
		}
		if greeting := hook.Greeting(dir); greeting != "" {
			fmt.Println(greeting)
		}
	},
}

// lazyArchive defers opening the sqlite archive until there is something to
// add, so a run that preserves nothing touches no files at all.
type lazyArchive struct {
	workDir string
}

func (l lazyArchive) AddItems(sessionID string, items []store.ContextItem) error {
	a, err := store.OpenArchive(l.workDir)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.AddItems(sessionID, items)
}
