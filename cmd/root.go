package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ctxkeep",
	Short: "Preserve key context from AI coding sessions before history compaction",
	Long: `ctxkeep hooks into an AI coding agent's lifecycle: right before the agent
compacts its conversation history, it scans the transcript for architecture
decisions, tradeoffs, fixes, and requirements, and preserves them as JSON
records you can review, search, and paste into a new session.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
