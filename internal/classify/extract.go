package classify

import "strings"

const (
	// maxSnippetLen caps extracted snippets regardless of source message size.
	maxSnippetLen = 500
	// minSnippetLen drops snippets too short to be worth preserving.
	minSnippetLen = 20
)

// extractWindow locates the line containing matchOffset and returns a trimmed
// window of that line plus its immediate neighbors. Content without newlines
// degenerates to the whole content, still subject to the length cap. The
// second result is false when no line contains the offset, in which case the
// candidate is discarded by the caller.
func extractWindow(content string, matchOffset int) (string, bool) {
	lines := strings.Split(content, "\n")

	offset := 0
	for i, line := range lines {
		end := offset + len(line) + 1 // line plus its separator
		if matchOffset >= offset && matchOffset < end {
			start := i - 1
			if start < 0 {
				start = 0
			}
			stop := i + 1
			if stop > len(lines)-1 {
				stop = len(lines) - 1
			}
			window := strings.TrimSpace(strings.Join(lines[start:stop+1], "\n"))
			if len(window) > maxSnippetLen {
				window = window[:maxSnippetLen] + "..."
			}
			return window, true
		}
		offset = end
	}
	return "", false
}
