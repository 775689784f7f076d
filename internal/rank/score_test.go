package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiendamayor/smartsearch/internal/catalog"
)

func wirelessMouse() catalog.Product {
	return catalog.Product{
		ID:       "p1",
		Title:    "Wireless Mouse",
		Category: "Electronics",
		Slug:     "wireless-mouse",
	}
}

func TestScoreTitleSubstring(t *testing.T) {
	// "mouse" is a title substring (+100) and a long-enough word (+30),
	// and the partial prefix "mous" also hits the title (+15). The title
	// does not start with "mouse", so no prefix bonus.
	got := Score("mouse", wirelessMouse())
	assert.Equal(t, 145, got)
}

func TestScoreTitlePrefixStacks(t *testing.T) {
	// Case-insensitive comparison: "wireless mouse" starts with "wir", so
	// the +50 prefix bonus stacks on the +100 substring bonus. "wir" is a
	// 3-rune word (+30) and its own partial prefix (+15).
	got := Score("wir", wirelessMouse())
	assert.Equal(t, 195, got)
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("MOUSE", wirelessMouse()), Score("mouse", wirelessMouse()))
}

func TestScoreTrimsQuery(t *testing.T) {
	assert.Equal(t, Score("mouse", wirelessMouse()), Score("  mouse  ", wirelessMouse()))
}

func TestScoreCategorySubstring(t *testing.T) {
	// "electro" hits the category as a substring (+40) and as a word
	// (+20); the partial prefix "electr" misses the title.
	got := Score("electro", wirelessMouse())
	assert.Equal(t, 60, got)
}

func TestScoreWordContributionsAccumulate(t *testing.T) {
	p := catalog.Product{
		ID:          "p2",
		Title:       "Mouse Pad Gaming",
		Category:    "Gaming",
		Description: "Large mouse pad for gaming setups",
		Slug:        "mouse-pad-gaming",
	}
	// "gaming mouse" is not a contiguous title or category substring, and
	// neither is the partial prefix "gaming mous". Words: "gaming" hits
	// title (+30), category (+20), description (+10); "mouse" hits title
	// (+30) and description (+10).
	got := Score("gaming mouse", p)
	assert.Equal(t, 100, got)
}

func TestScoreMultiWordTitleMatch(t *testing.T) {
	p := catalog.Product{
		ID:          "p3",
		Title:       "USB Hub",
		Category:    "Accessories",
		Description: "4-port usb hub",
		Slug:        "usb-hub",
	}
	// "usb hub" as a whole is the title (+100, prefix +50). Both words
	// are 3 runes, so each contributes: title +30 and description +10
	// apiece. The partial prefix "usb hu" hits the title (+15).
	got := Score("usb hub", p)
	assert.Equal(t, 245, got)
}

func TestScoreTwoRuneWordSkipped(t *testing.T) {
	p := catalog.Product{ID: "p4", Title: "TV Stand", Category: "Home", Slug: "tv-stand"}
	// "tv" matches the title substring (+100) and prefix (+50) and the
	// partial prefix probe (min length 3 clamps to the 2-rune query, +15),
	// but contributes no per-word bonuses.
	got := Score("tv", p)
	assert.Equal(t, 165, got)
}

func TestScoreNoMatch(t *testing.T) {
	assert.Zero(t, Score("zzzz", wirelessMouse()))
}

func TestScoreEmptyQuery(t *testing.T) {
	assert.Zero(t, Score("", wirelessMouse()))
	assert.Zero(t, Score("   ", wirelessMouse()))
}

func TestScoreAbsentFields(t *testing.T) {
	// Missing category and description never panic; they just contribute
	// nothing.
	p := catalog.Product{ID: "p5", Title: "Desk Mat", Slug: "desk-mat"}
	got := Score("desk", p)
	// +100 substring, +50 prefix, +30 word, +15 partial prefix ("des").
	assert.Equal(t, 195, got)
}

func TestScorePartialPrefixToleratesLastKeystroke(t *testing.T) {
	// "mousr" (typo in flight) is not a substring, but the partial prefix
	// "mous" still hits the title for +15.
	got := Score("mousr", wirelessMouse())
	assert.Equal(t, 15, got)
}

func TestPartialPrefix(t *testing.T) {
	tests := []struct {
		q    string
		want string
	}{
		{"ab", "ab"},       // clamped to query length
		{"abc", "abc"},     // max(3, 2) = 3
		{"abcd", "abc"},    // max(3, 3) = 3
		{"abcde", "abcd"},  // len-1
		{"ratón", "rató"},  // rune-based, not byte-based
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, partialPrefix(tt.q), "query %q", tt.q)
	}
}
