// Package seo carries page metadata and schema.org payload builders for the
// storefront's head section.
package seo

// OpenGraph mirrors the og: meta properties the layout emits.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Twitter mirrors the twitter: card meta tags.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page head metadata.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
}

// For fills a Meta with the usual duplication between the plain tags and the
// OpenGraph/Twitter variants.
func For(title, description, canonical string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
		},
		Twitter: Twitter{Card: "summary"},
	}
}
