package classify

import (
	"regexp"
	"strings"

	"ctxkeep/internal/store"
)

// dedupePrefixLen bounds key comparison: two snippets whose first 100
// normalized characters coincide count as duplicates even if their tails
// differ. Snippets are themselves capped at 500 chars, so the approximation
// stays cheap without losing much.
const dedupePrefixLen = 100

var whitespaceRe = regexp.MustCompile(`\s+`)

// Deduplicate keeps the first item for each normalized content prefix,
// preserving input order. The key ignores category, so the same sentence
// matched by two rule groups survives only under the earlier group.
func Deduplicate(items []store.ContextItem) []store.ContextItem {
	seen := make(map[string]bool, len(items))
	var out []store.ContextItem
	for _, it := range items {
		key := dedupeKey(it.Content)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func dedupeKey(content string) string {
	norm := whitespaceRe.ReplaceAllString(strings.ToLower(content), " ")
	if len(norm) > dedupePrefixLen {
		norm = norm[:dedupePrefixLen]
	}
	return norm
}
