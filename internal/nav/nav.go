// Package nav builds the navigation targets the search box emits on
// commit. Emission is fire-and-forget; the receiving router is an external
// collaborator.
package nav

import "net/url"

// Kind distinguishes the two possible commit destinations.
type Kind int

const (
	// KindProduct navigates to a concrete product's detail view.
	KindProduct Kind = iota
	// KindSearch navigates to the generic results view for free text.
	KindSearch
)

// Target is a navigation instruction.
type Target struct {
	Kind Kind
	Path string
}

// ProductDetail returns the target for a product's detail view.
func ProductDetail(slug string) Target {
	return Target{Kind: KindProduct, Path: ProductDetailPath(slug)}
}

// SearchResults returns the target for a free-text search.
func SearchResults(text string) Target {
	return Target{Kind: KindSearch, Path: SearchResultsPath(text)}
}

// ProductDetailPath builds the detail route for a catalog slug.
func ProductDetailPath(slug string) string {
	return "/product/" + slug
}

// SearchResultsPath builds the generic results route carrying the raw
// query text.
func SearchResultsPath(text string) string {
	return "/search?q=" + url.QueryEscape(text)
}
