package classify

import (
	"testing"
	"time"

	"ctxkeep/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEmptyInput(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Empty(t, Classify([]store.Message{}))
}

func TestClassifyArchitectureDecision(t *testing.T) {
	msgs := []store.Message{{
		Role:      "assistant",
		Content:   "We decided to use Redis because it offers sub-millisecond latency for caching.",
		Timestamp: "2024-01-01T00:00:00Z",
	}}

	items := Deduplicate(Classify(msgs))
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, store.CategoryArchitecture, it.Category)
	assert.Contains(t, it.Content, "We decided to use Redis because it offers sub-millisecond latency for caching.")
	assert.Equal(t, "assistant", it.Role)
	assert.Equal(t, 0, it.MessageIndex)
	assert.Equal(t, "2024-01-01T00:00:00Z", it.Timestamp)
	assert.Greater(t, len(it.Content), 20)
	assert.LessOrEqual(t, len(it.Content), 500)
}

func TestClassifyMultipleCategoriesFromOneMessage(t *testing.T) {
	msgs := []store.Message{{
		Role: "assistant",
		Content: "We decided to use sqlite for the archive.\n\n\n\n" +
			"Fixed the flaky scheduler test by pinning the clock.",
		Timestamp: "2024-01-01T00:00:00Z",
	}}

	items := Deduplicate(Classify(msgs))
	require.Len(t, items, 2)
	assert.Equal(t, store.CategoryArchitecture, items[0].Category)
	assert.Equal(t, store.CategoryDebugging, items[1].Category)
}

func TestClassifyCrossCategoryDuplicateKeepsEarliestCategory(t *testing.T) {
	// One sentence that trips both the architecture and tradeoff groups:
	// after dedup only the earlier group's item survives.
	msgs := []store.Message{{
		Role:      "assistant",
		Content:   "We chose Postgres over MySQL and accepted the tradeoff in operational cost.",
		Timestamp: "2024-01-01T00:00:00Z",
	}}

	raw := Classify(msgs)
	require.GreaterOrEqual(t, len(raw), 2)

	items := Deduplicate(raw)
	require.Len(t, items, 1)
	assert.Equal(t, store.CategoryArchitecture, items[0].Category)
}

func TestClassifyTimestampFallback(t *testing.T) {
	msgs := []store.Message{{
		Role:    "user",
		Content: "The requirement is that exports must support CSV and JSON.",
	}}

	items := Classify(msgs)
	require.NotEmpty(t, items)
	require.NotEmpty(t, items[0].Timestamp)
	_, err := time.Parse(time.RFC3339, items[0].Timestamp)
	assert.NoError(t, err)
}

func TestClassifyDropsTooShortSnippets(t *testing.T) {
	// Matches the architecture group but the whole message is under the
	// minimum snippet length.
	msgs := []store.Message{{Role: "assistant", Content: "architecture"}}
	assert.Empty(t, Classify(msgs))
}

func TestClassifyNoMatches(t *testing.T) {
	msgs := []store.Message{
		{Role: "user", Content: "Can you look at the failing test?"},
		{Role: "assistant", Content: "Sure, taking a look now."},
	}
	assert.Empty(t, Classify(msgs))
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []store.Category{
		store.CategoryArchitecture,
		store.CategoryTradeoff,
		store.CategoryOptimization,
		store.CategoryDebugging,
		store.CategoryImplementation,
		store.CategoryRequirements,
	}, Categories())
}
