package generate

import (
	"strings"
	"testing"

	"ctxkeep/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptGroupsByCategory(t *testing.T) {
	rec := &store.SessionRecord{
		SessionID:   "s1",
		PreservedAt: "2024-01-01T00:00:00Z",
		ItemCount:   3,
		Items: []store.RecordItem{
			{Category: store.CategoryDebugging, Content: "Root cause was a stale file handle.", Role: "assistant"},
			{Category: store.CategoryArchitecture, Content: "We decided to use event sourcing because it simplifies auditing.", Role: "assistant"},
			{Category: store.CategoryArchitecture, Content: "We decided to use event sourcing because it simplifies auditing.", Role: "assistant"},
		},
	}

	prompt := BuildPrompt(rec)

	assert.Contains(t, prompt, "session s1")
	assert.Contains(t, prompt, "### Architecture decisions")
	assert.Contains(t, prompt, "### Debugging findings")
	assert.Contains(t, prompt, "- We decided to use event sourcing because it simplifies auditing.")
	assert.Contains(t, prompt, "- Root cause was a stale file handle.")
	assert.NotContains(t, prompt, "### Tradeoffs")

	// Architecture section comes first, matching the rule table order, and
	// the repeated line is emitted only once.
	assert.Less(t, strings.Index(prompt, "### Architecture decisions"), strings.Index(prompt, "### Debugging findings"))
	assert.Equal(t, 1, strings.Count(prompt, "event sourcing"))
}

func TestBuildPromptTruncatesLongLines(t *testing.T) {
	rec := &store.SessionRecord{
		SessionID:   "s1",
		PreservedAt: "2024-01-01T00:00:00Z",
		ItemCount:   1,
		Items: []store.RecordItem{
			{Category: store.CategoryRequirements, Content: strings.Repeat("r", 300), Role: "user"},
		},
	}

	prompt := BuildPrompt(rec)
	assert.Contains(t, prompt, strings.Repeat("r", 200)+"...")
	assert.NotContains(t, prompt, strings.Repeat("r", 201))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 10, EstimateTokens(strings.Repeat("a", 35)))
}
