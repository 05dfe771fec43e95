package handlers

import (
	"html/template"

	"github.com/Dangiteric/3DPrinting/internal/nav"
	"github.com/Dangiteric/3DPrinting/internal/seo"
)

// PageData is the view model for pages using the shared layout.
type PageData struct {
	Title string
	SEO   seo.Meta

	Path string
	Nav  []nav.RenderedItem

	// JSON-LD payloads rendered into <script type="application/ld+json">.
	// Marked safe so the template does not re-escape the marshaled JSON.
	JSONLD []template.JS

	// Per-page view model payloads
	Shop  any
	Picks any
	CTAs  any
}

// NewPageData fills the shared layout fields for the given request path.
func NewPageData(title, path string) PageData {
	return PageData{
		Title: title,
		Path:  path,
		Nav:   nav.Build(path),
	}
}
