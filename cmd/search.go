package cmd

import (
	"fmt"
	"os"
	"strings"

	"ctxkeep/internal/store"

	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "max number of results")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search preserved context items",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := openRecords(); err != nil {
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		arc, err := store.OpenArchive(dir)
		if err != nil {
			return err
		}
		defer arc.Close()

		query := strings.Join(args, " ")
		items, err := arc.Search(query, searchLimit)
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Printf("No preserved items matching %q\n", query)
			return nil
		}

		for _, it := range items {
			fmt.Printf("[%s] %s (session %s, %s)\n",
				it.Category,
				truncateShow(it.Content, 160),
				it.SessionID,
				it.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}
