package hook

import (
	"fmt"

	"ctxkeep/internal/store"
)

// Greeting builds the one-line session-start message from the summary index.
// A missing or unreadable summary reads as "nothing preserved yet" and yields
// an empty string rather than an error.
func Greeting(workDir string) string {
	idx, err := store.NewRecordStore(workDir).LoadSummary()
	if err != nil || len(idx.Sessions) == 0 {
		return ""
	}

	total := 0
	for _, e := range idx.Sessions {
		total += e.ItemCount
	}
	return fmt.Sprintf("ctxkeep: %d preserved context items across %d sessions — run 'ctxkeep sessions' to review",
		total, len(idx.Sessions))
}
