package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// Product returns a product schema payload for a catalog item. Price 0 means
// quote on request, so no offer block is emitted for it.
func Product(name, description, category string, price float64) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if category != "" {
		m["category"] = category
	}
	if price > 0 {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         price,
			"priceCurrency": "USD",
			"availability":  "https://schema.org/MadeToOrder",
		}
	}
	return m
}
