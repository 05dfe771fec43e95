package nav

import (
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/" or "/#picks"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition. The storefront is a single page;
// secondary entries point at page anchors.
var Main = []Item{
	{Path: "/", Label: "Shop"},
	{Path: "/#picks", Label: "Community picks"},
	{Path: "/#contact", Label: "Contact"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	// anchor entries never go active; the page itself does
	if strings.Contains(itemPath, "#") {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}
