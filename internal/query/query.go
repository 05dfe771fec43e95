// Package query selects and orders catalog items for display. All functions
// are pure: the catalog slice passed in is never modified.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
)

// CategoryAll is the sentinel category value that keeps every item.
const CategoryAll = "all"

// Supported sort keys. Any other value leaves the filtered order untouched.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
	SortNameAsc   = "nameAsc"
)

// A missing or zero price sorts last in both price directions: ascending uses
// a high sentinel, descending uses zero. The asymmetry is deliberate.
const missingPriceSentinel = 999999

// Params describes one filter+sort pass over the catalog.
type Params struct {
	Search   string
	Category string
	Sort     string
}

// Filter returns the items matching p, ordered per p.Sort. The result is
// always a fresh slice.
func Filter(items []catalog.Item, p Params) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if p.Category != "" && p.Category != CategoryAll && it.Category != p.Category {
			continue
		}
		out = append(out, it)
	}

	if search := strings.ToLower(strings.TrimSpace(p.Search)); search != "" {
		kept := out[:0]
		for _, it := range out {
			if strings.Contains(haystack(it), search) {
				kept = append(kept, it)
			}
		}
		out = kept
	}

	switch p.Sort {
	case SortFeatured:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOr(out[i], missingPriceSentinel) < priceOr(out[j], missingPriceSentinel)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOr(out[i], 0) > priceOr(out[j], 0)
		})
	case SortNameAsc:
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// haystack joins every searchable field into one lowercase string. Absent
// optional fields contribute nothing.
func haystack(it catalog.Item) string {
	parts := make([]string, 0, 6+len(it.Tags))
	parts = append(parts, it.Name, it.Category, it.Description)
	parts = append(parts, it.Tags...)
	parts = append(parts, it.Material, it.Size, it.ID)
	return strings.ToLower(strings.Join(parts, " "))
}

func priceOr(it catalog.Item, missing float64) float64 {
	if it.Price == 0 {
		return missing
	}
	return it.Price
}
