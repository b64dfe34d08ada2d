package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWindowMiddleLine(t *testing.T) {
	content := "some earlier context\nWe decided to use X here\nand a following line"
	offset := strings.Index(content, "decided")

	window, ok := extractWindow(content, offset)
	require.True(t, ok)
	assert.Equal(t, content, window)
}

func TestExtractWindowFirstLine(t *testing.T) {
	content := "We decided to use X here\nfollowing line\nfar away line"
	window, ok := extractWindow(content, 0)
	require.True(t, ok)
	assert.Equal(t, "We decided to use X here\nfollowing line", window)
}

func TestExtractWindowLastLine(t *testing.T) {
	content := "first line\nsecond line\nthe fix was simple"
	offset := strings.Index(content, "fix")

	window, ok := extractWindow(content, offset)
	require.True(t, ok)
	assert.Equal(t, "second line\nthe fix was simple", window)
}

func TestExtractWindowOffsetOutOfRange(t *testing.T) {
	_, ok := extractWindow("abc", 50)
	assert.False(t, ok)

	_, ok = extractWindow("abc", -1)
	assert.False(t, ok)
}

func TestExtractWindowTruncatesLongContent(t *testing.T) {
	content := strings.Repeat("a", 600)
	window, ok := extractWindow(content, 0)
	require.True(t, ok)
	assert.Len(t, window, 503)
	assert.True(t, strings.HasSuffix(window, "..."))
	assert.Equal(t, content[:500], window[:500])
}

func TestExtractWindowSingleParagraph(t *testing.T) {
	// No newlines: the window degenerates to the whole content.
	content := "one long paragraph where we decided to use something interesting"
	offset := strings.Index(content, "decided")

	window, ok := extractWindow(content, offset)
	require.True(t, ok)
	assert.Equal(t, content, window)
}

func TestExtractWindowTrimsWhitespace(t *testing.T) {
	content := "   \nWe decided to use X here\n   "
	offset := strings.Index(content, "decided")

	window, ok := extractWindow(content, offset)
	require.True(t, ok)
	assert.Equal(t, "We decided to use X here", window)
}
