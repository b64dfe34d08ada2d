package generate

import (
	"fmt"
	"strings"
	"time"

	"ctxkeep/internal/classify"
	"ctxkeep/internal/store"
)

var headings = map[store.Category]string{
	store.CategoryArchitecture:   "Architecture decisions",
	store.CategoryTradeoff:       "Tradeoffs",
	store.CategoryOptimization:   "Optimizations",
	store.CategoryDebugging:      "Debugging findings",
	store.CategoryImplementation: "Implementation notes",
	store.CategoryRequirements:   "Requirements & constraints",
}

// BuildPrompt renders a preserved session record as a paste-ready context
// prompt for starting a fresh session, grouping items by category.
func BuildPrompt(rec *store.SessionRecord) string {
	grouped := make(map[store.Category][]store.RecordItem)
	for _, it := range rec.Items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Preserved context from session %s (%s)\n\n", rec.SessionID, shortTime(rec.PreservedAt)))

	for _, cat := range classify.Categories() {
		items := grouped[cat]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n", headings[cat]))
		seen := make(map[string]bool)
		for _, it := range items {
			line := truncateLine(firstLine(it.Content), 200)
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			sb.WriteString(fmt.Sprintf("- %s\n", line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("(%d preserved items, ~%d tokens)\n", rec.ItemCount, EstimateTokens(sb.String())))
	return sb.String()
}

// EstimateTokens uses character-based estimation. Most tokenizers average
// around 3.5 chars per token for mixed code/text content.
func EstimateTokens(text string) int {
	return int(float64(len(text)) / 3.5)
}

func shortTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04")
}

func firstLine(s string) string {
	idx := strings.IndexByte(s, '\n')
	if idx < 0 {
		return s
	}
	return s[:idx]
}

func truncateLine(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
