package classify

import (
	"regexp"

	"ctxkeep/internal/store"
)

// ruleGroup pairs a category with the phrasings that signal it. The table is
// evaluated top to bottom, so when the same sentence trips patterns in more
// than one group, deduplication settles on the earliest category.
type ruleGroup struct {
	category store.Category
	patterns []*regexp.Regexp
}

var ruleTable = []ruleGroup{
	{store.CategoryArchitecture, compileAll(
		`\bdecided to (?:use|choose|go with|implement)\b`,
		`\b(?:chose|selected|picked)\b.{0,60}\b(?:because|over|instead of)\b`,
		`\barchitect(?:ure|ural)\b`,
		`\bdesign (?:decision|choice)\b`,
		`\bswitch(?:ed|ing) (?:from|to)\b`,
	)},
	{store.CategoryTradeoff, compileAll(
		`\btrade-?offs?\b`,
		`\bat the (?:cost|expense) of\b`,
		`\b(?:downside|drawback)\b`,
		`\b(?:went with|opted for)\b.{0,60}\bbecause\b`,
		`\bsacrific(?:e|ed|ing)\b`,
	)},
	{store.CategoryOptimization, compileAll(
		`\boptimi[sz](?:ed|ing|ation)\b`,
		`\b(?:reduced|cut|sped up|speeds? up)\b.{0,60}\b(?:latency|memory|allocations?|time|cpu)\b`,
		`\b\d+(?:\.\d+)?x (?:faster|speedup)\b`,
		`\bperformance (?:bottleneck|improvement|win)\b`,
	)},
	{store.CategoryDebugging, compileAll(
		`\b(?:fixed|solved|resolved)\b.{0,60}\bby\b`,
		`\broot cause\b`,
		`\bthe (?:bug|issue|problem|error) (?:was|is|turned out)\b`,
		`\bthe (?:fix|solution) (?:is|was)\b`,
		`\btracked (?:it |this |that )?down to\b`,
	)},
	{store.CategoryImplementation, compileAll(
		`\bimplemented\b.{0,60}\b(?:using|with|via)\b`,
		`\b(?:added|created|wrote)\b.{0,40}\b(?:function|method|struct|module|package|handler|endpoint|helper)\b`,
		`\brefactor(?:ed|ing)\b`,
		`\bwired (?:up|in|into)\b`,
	)},
	{store.CategoryRequirements, compileAll(
		`\brequirements?\b`,
		`\bconstraints?\b`,
		`\bmust (?:support|handle|never|not|be able)\b`,
		`\b(?:needs?|has) to (?:support|handle|be able to)\b`,
		`\bbackwards?[- ]compatib`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// Categories lists the classification categories in table order.
func Categories() []store.Category {
	out := make([]store.Category, 0, len(ruleTable))
	for _, g := range ruleTable {
		out = append(out, g.category)
	}
	return out
}
