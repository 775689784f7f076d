package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// demo product templates used by Generate. Titles and categories are chosen
// so a generated catalog exercises substring, prefix and multi-word matches.
var demoProducts = []struct {
	title       string
	category    string
	description string
	tags        []string
	price       float64
}{
	{"Wireless Mouse", "Electronics", "Ergonomic 2.4GHz wireless mouse with silent clicks", []string{"mouse", "wireless", "office"}, 12.50},
	{"Mechanical Keyboard", "Electronics", "Hot-swappable mechanical keyboard with RGB backlight", []string{"keyboard", "gaming"}, 38.00},
	{"USB-C Charging Cable", "Accessories", "Braided 2m USB-C to USB-C fast charging cable", []string{"cable", "usb-c"}, 4.20},
	{"Phone Case Clear", "Accessories", "Shockproof transparent phone case", []string{"phone", "case"}, 3.10},
	{"Bluetooth Speaker", "Audio", "Portable waterproof bluetooth speaker, 12h battery", []string{"speaker", "bluetooth"}, 19.90},
	{"Noise Cancelling Headphones", "Audio", "Over-ear wireless headphones with active noise cancelling", []string{"headphones", "wireless"}, 54.00},
	{"Smart Watch Band", "Wearables", "Silicone replacement band for smart watches", []string{"watch", "band"}, 2.80},
	{"Laptop Stand", "Office", "Adjustable aluminium laptop stand", []string{"laptop", "stand", "desk"}, 16.40},
	{"Desk Lamp LED", "Office", "Dimmable LED desk lamp with USB charging port", []string{"lamp", "led", "desk"}, 11.00},
	{"Water Bottle Steel", "Home", "Insulated stainless steel water bottle 750ml", []string{"bottle", "steel"}, 7.60},
	{"Yoga Mat", "Sports", "Non-slip yoga mat 6mm with carrying strap", []string{"yoga", "mat", "fitness"}, 9.30},
	{"Running Socks Pack", "Sports", "Breathable running socks, pack of 5", []string{"socks", "running"}, 5.50},
}

// Generate builds a demo snapshot of n products by cycling the templates.
// IDs are fresh UUIDs; slugs are derived from the title and suffixed when
// a template repeats so the uniqueness invariant holds.
func Generate(n int) Snapshot {
	snap := make(Snapshot, 0, n)
	for i := 0; i < n; i++ {
		tpl := demoProducts[i%len(demoProducts)]
		title := tpl.title
		slug := Slugify(title)
		if cycle := i / len(demoProducts); cycle > 0 {
			title = fmt.Sprintf("%s %d", tpl.title, cycle+1)
			slug = fmt.Sprintf("%s-%d", slug, cycle+1)
		}
		snap = append(snap, Product{
			ID:          uuid.NewString(),
			Title:       title,
			Category:    tpl.category,
			Description: tpl.description,
			Tags:        tpl.tags,
			Price:       tpl.price,
			Slug:        slug,
		})
	}
	return snap
}

// Slugify lowers a title and replaces runs of non-alphanumeric runes with
// single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}
