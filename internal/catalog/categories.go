package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Categories returns the distinct non-empty category values across items,
// sorted by locale collation. Category membership is derived here, never
// stored separately in the document.
func Categories(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Category == "" {
			continue
		}
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	collate.New(language.English).SortStrings(out)
	return out
}
