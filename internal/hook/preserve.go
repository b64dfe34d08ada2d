package hook

import (
	"fmt"
	"os"

	"ctxkeep/internal/classify"
	"ctxkeep/internal/store"
)

// Outcome reports what a preservation run did.
type Outcome struct {
	Written   bool
	ItemCount int
}

// Archiver receives successfully preserved items for secondary storage.
// A nil or failing archiver never changes the outcome.
type Archiver interface {
	AddItems(sessionID string, items []store.ContextItem) error
}

// Preserve runs the classify, dedupe, persist pipeline for one transcript.
// It never returns an error: the host must proceed with compaction no matter
// what happens here, so every failure degrades to a stderr diagnostic.
func Preserve(sessionID string, messages []store.Message, workDir string, arc Archiver) Outcome {
	if len(messages) == 0 {
		diagf("nothing to preserve")
		return Outcome{}
	}

	items := classify.Deduplicate(classify.Classify(messages))
	if len(items) == 0 {
		diagf("no preservable context in %d messages", len(messages))
		return Outcome{}
	}

	written := store.NewRecordStore(workDir).Persist(sessionID, items)
	if written && arc != nil {
		if err := arc.AddItems(sessionID, items); err != nil {
			diagf("archive items: %v", err)
		}
	}
	return Outcome{Written: written, ItemCount: len(items)}
}

func diagf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ctxkeep: "+format+"\n", args...)
}
