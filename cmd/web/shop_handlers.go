package main

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/Dangiteric/3DPrinting/internal/handlers"
	"github.com/Dangiteric/3DPrinting/internal/seo"
)

// ShopHandler renders the full storefront page: controls, grid, community
// picks and the call-to-action row.
func ShopHandler(w http.ResponseWriter, r *http.Request) {
	shop := buildShopView(store, r.URL.Query())
	picks := buildPicksView(store)

	data := handlers.NewPageData(cfg.Site.Name, "/")
	data.SEO = seo.For(cfg.Site.Name,
		"Made-to-order 3D prints. Browse the catalog and text us to order.",
		absoluteURL("/"))
	data.JSONLD = []template.JS{
		template.JS(seo.JSON(seo.Organization(cfg.Site.Name, cfg.Site.BaseURL))),
		template.JS(seo.JSON(seo.WebSite(cfg.Site.Name, cfg.Site.BaseURL))),
	}
	if store.Ready() {
		for _, it := range store.Items() {
			if !it.Featured {
				continue
			}
			data.JSONLD = append(data.JSONLD,
				template.JS(seo.JSON(seo.Product(it.Name, it.Description, it.Category, it.Price))))
		}
	}
	data.Shop = shop
	data.Picks = picks
	data.CTAs = ctaSlots

	render(w, r, data)
}

// ShopGridFrag serves the grid fragment for htmx control changes. The
// canonical query goes back in HX-Push-Url so the address bar stays
// shareable.
func ShopGridFrag(w http.ResponseWriter, r *http.Request) {
	view := buildShopView(store, r.URL.Query())
	push := "/"
	if view.Query != "" {
		push = "/?" + view.Query
	}
	w.Header().Set("HX-Push-Url", push)
	renderFragment(w, r, "frag_shop_grid", view)
}

// CatalogDocHandler re-serves the loaded catalog document so the page's
// data stays inspectable at the same path the store loaded it from.
func CatalogDocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	doc, err := store.Document()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "catalog_unavailable",
			"message": loadFailedCopy,
		})
		return
	}
	_ = json.NewEncoder(w).Encode(doc)
}

func absoluteURL(path string) string {
	base := strings.TrimSuffix(cfg.Site.BaseURL, "/")
	if base == "" {
		return ""
	}
	return base + path
}
