// Package catalog holds the immutable product snapshot the search engine
// scores against. The snapshot is loaded once at startup and never mutated;
// all search-box instances share the same slice read-only.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Product is a single catalog record. Fields may be absent in the source
// data; they decode to zero values and score as empty strings.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
	Price       float64  `json:"providerPrice,omitempty"`
	Slug        string   `json:"slug"`
}

// Snapshot is an ordered, read-only product collection. Iteration order is
// the tie-break order for equal relevance scores, so it must be preserved.
type Snapshot []Product

// Load reads a JSON array of products from path and validates it.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON product array.
func Parse(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Validate enforces the snapshot invariants: non-empty IDs and slugs,
// unique across the collection.
func (s Snapshot) Validate() error {
	ids := make(map[string]struct{}, len(s))
	slugs := make(map[string]struct{}, len(s))
	for i, p := range s {
		if p.ID == "" {
			return fmt.Errorf("catalog: product %d has empty id", i)
		}
		if p.Slug == "" {
			return fmt.Errorf("catalog: product %q has empty slug", p.ID)
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if _, dup := slugs[p.Slug]; dup {
			return fmt.Errorf("catalog: duplicate slug %q", p.Slug)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}
	}
	return nil
}
