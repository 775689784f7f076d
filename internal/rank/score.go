// Package rank implements the relevance scoring and ranking pipeline behind
// the storefront's search-as-you-type box.
//
// Scoring is a heuristic additive point system over substring matches, not
// a full-text ranker: there is no tokenized index, stemming, or fuzzy
// matching. Every evaluation re-scores the whole catalog snapshot.
package rank

import (
	"strings"
	"unicode/utf8"

	"github.com/tiendamayor/smartsearch/internal/catalog"
)

// Scoring bonuses. Contributions from multiple rules and multiple query
// words all accumulate; there is no early exit.
const (
	bonusTitleSubstring = 100 // query appears anywhere in the title
	bonusTitlePrefix    = 50  // stacks on top of the substring bonus
	bonusCategory       = 40  // query appears in the category
	bonusPartialPrefix  = 15  // title contains the partial-typing prefix
	bonusWordTitle      = 30  // per query word found in the title
	bonusWordCategory   = 20  // per query word found in the category
	bonusWordDesc       = 10  // per query word found in the description
)

// minWordRunes is the shortest query word that contributes per-word bonuses.
const minWordRunes = 3

// Score computes the relevance of a product for a query. The query is
// lower-cased and trimmed; product fields are compared case-insensitively
// and absent fields behave as empty strings. A score of 0 means no match.
func Score(query string, p catalog.Product) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)

	score := 0
	if strings.Contains(title, q) {
		score += bonusTitleSubstring
		if strings.HasPrefix(title, q) {
			score += bonusTitlePrefix
		}
	}

	for _, word := range strings.Fields(q) {
		if utf8.RuneCountInString(word) < minWordRunes {
			continue
		}
		if strings.Contains(title, word) {
			score += bonusWordTitle
		}
		if strings.Contains(category, word) {
			score += bonusWordCategory
		}
		if strings.Contains(description, word) {
			score += bonusWordDesc
		}
	}

	if strings.Contains(category, q) {
		score += bonusCategory
	}

	if strings.Contains(title, partialPrefix(q)) {
		score += bonusPartialPrefix
	}

	return score
}

// partialPrefix returns the first max(3, len(q)-1) runes of q, clamped to
// the query length. For queries of up to three runes this is the query
// itself, so the bonus stacks with a full substring hit; for longer queries
// it drops the final rune to tolerate an in-progress keystroke.
func partialPrefix(q string) string {
	runes := []rune(q)
	n := len(runes) - 1
	if n < minWordRunes {
		n = minWordRunes
	}
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}
