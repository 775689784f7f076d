package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tiendamayor/smartsearch/internal/catalog"
)

const (
	// MaxResults is the result cap for a single evaluation.
	MaxResults = 8

	// MinQueryRunes is the hard minimum trimmed query length; below it no
	// scoring happens at all.
	MinQueryRunes = 2
)

// Candidate pairs a product with its relevance score for the current query.
// Candidates are ephemeral: fully recomputed on every evaluation, never
// mutated incrementally.
type Candidate struct {
	catalog.Product
	Score int
}

// Rank scores the snapshot for the query and returns at most MaxResults
// candidates, descending by score. It is a pure function of its inputs and
// safe to call concurrently; a stale invocation's result can simply be
// dropped by the caller.
func Rank(query string, snap catalog.Snapshot) []Candidate {
	return RankN(query, snap, MinQueryRunes, MaxResults)
}

// RankN is Rank with explicit threshold and result cap. Out-of-range
// arguments fall back to the package defaults.
func RankN(query string, snap catalog.Snapshot, minRunes, limit int) []Candidate {
	if minRunes <= 0 {
		minRunes = MinQueryRunes
	}
	if limit <= 0 {
		limit = MaxResults
	}
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minRunes {
		return nil
	}

	candidates := make([]Candidate, 0, limit)
	for _, p := range snap {
		if s := Score(query, p); s > 0 {
			candidates = append(candidates, Candidate{Product: p, Score: s})
		}
	}

	// Equal scores keep catalog order, so the sort must be stable.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return limitResults(candidates, limit)
}

// limitResults truncates the candidate slice to limit entries.
func limitResults(candidates []Candidate, limit int) []Candidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
