package classify

import (
	"time"

	"ctxkeep/internal/store"
)

// Classify runs every rule group over every message and extracts a snippet
// around each pattern hit. There is no early exit: one message can yield
// items in several categories, and several items within one category —
// Deduplicate is what keeps the result from drowning in near-copies.
// An empty input yields an empty result, not an error.
func Classify(messages []store.Message) []store.ContextItem {
	var items []store.ContextItem
	for idx, msg := range messages {
		for _, group := range ruleTable {
			for _, re := range group.patterns {
				loc := re.FindStringIndex(msg.Content)
				if loc == nil {
					continue
				}
				snippet, ok := extractWindow(msg.Content, loc[0])
				if !ok || len(snippet) <= minSnippetLen {
					continue
				}
				ts := msg.Timestamp
				if ts == "" {
					ts = time.Now().UTC().Format(time.RFC3339)
				}
				items = append(items, store.ContextItem{
					Category:     group.category,
					Content:      snippet,
					Role:         msg.Role,
					MessageIndex: idx,
					Timestamp:    ts,
				})
			}
		}
	}
	return items
}
