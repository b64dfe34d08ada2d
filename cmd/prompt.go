package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ctxkeep/internal/generate"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	promptCopy bool
	promptOut  string
)

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().BoolVar(&promptCopy, "copy", false, "copy generated prompt to clipboard")
	promptCmd.Flags().StringVar(&promptOut, "out", "", "write prompt to file")
}

var promptCmd = &cobra.Command{
	Use:   "prompt [session-id]",
	Short: "Generate a context prompt for pasting into a new AI session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openRecords()
		if err != nil {
			return err
		}

		sessionID := ""
		if len(args) == 1 {
			sessionID = args[0]
		} else {
			idx, err := st.LoadSummary()
			if err != nil || len(idx.Sessions) == 0 {
				return fmt.Errorf("no preserved sessions to generate a prompt from")
			}
			sessionID = idx.Sessions[len(idx.Sessions)-1].SessionID
		}

		rec, err := st.LatestRecord(sessionID)
		if err != nil {
			return err
		}

		prompt := generate.BuildPrompt(rec)

		if promptCopy {
			if err := clipboard.WriteAll(prompt); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Println("Prompt copied to clipboard!")
			}
		}

		if promptOut != "" {
			outPath := promptOut
			if !filepath.IsAbs(outPath) {
				dir, _ := os.Getwd()
				outPath = filepath.Join(dir, outPath)
			}
			if err := os.WriteFile(outPath, []byte(prompt), 0644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			fmt.Printf("Prompt written to %s\n", outPath)
		}

		if !promptCopy && promptOut == "" {
			fmt.Println(prompt)
		}

		return nil
	},
}
