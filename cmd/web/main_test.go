package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
	"github.com/Dangiteric/3DPrinting/internal/config"
)

const testDoc = `{
  "seller": {"phoneE164": "+49 151-12345678", "location": "Berlin", "leadTime": "2-5 days"},
  "items": [
    {"id": "pl-01", "name": "Hex Planter", "category": "Planters", "description": "Geometric planter",
     "material": "PLA", "size": "12 cm", "leadTimeDays": 3, "price": 14, "tags": ["desk"]},
    {"id": "ty-01", "name": "Flexi Dino", "category": "Toys", "description": "Articulated dinosaur",
     "material": "PLA", "size": "20 cm", "leadTimeDays": 2, "price": 8},
    {"id": "cu-01", "name": "Photo Lithophane", "category": "Custom", "description": "Backlit photo panel",
     "material": "PLA", "size": "18 cm", "leadTimeDays": 5, "featured": true}
  ],
  "community_picks": [
    {"name": "Torture Toaster", "source": "Printables", "url": "https://www.printables.com/model/269394",
     "notes": "Great **calibration** check."},
    {"name": "Articulated Axolotl", "source": "Printables", "url": "https://www.printables.com/model/177913"}
  ]
}`

// newTestApp points the package globals at a fresh store loaded from doc and
// returns the wired router. Tests share the globals, so none run in parallel.
func newTestApp(t *testing.T, doc string) http.Handler {
	t.Helper()

	src := filepath.Join(t.TempDir(), "catalog.json")
	if doc != "" {
		if err := os.WriteFile(src, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	c.Dev = true
	c.Site.TemplatesDir = "../../templates"
	c.Site.PublicDir = "../../public"
	c.Catalog.Source = src

	cfg = c
	logger = zap.NewNop()
	store = catalog.NewStore(context.Background(), src)
	ctaSlots = buildCTASlots(cfg, store)

	return newRouter()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// countCards counts shop grid cards; only those carry a data-id attribute.
func countCards(t *testing.T, body string) int {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	n := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "article" {
			for _, a := range node.Attr {
				if a.Key == "data-id" {
					n++
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return n
}

func TestHealthz(t *testing.T) {
	h := newTestApp(t, testDoc)
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want ok", got)
	}
}

func TestShopPageRendersAllCards(t *testing.T) {
	h := newTestApp(t, testDoc)
	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if got := countCards(t, body); got != 3 {
		t.Fatalf("cards = %d, want 3", got)
	}
	if !strings.Contains(body, "3 item(s) shown") {
		t.Errorf("status line missing item count: %q", body)
	}
	if !strings.Contains(body, "Berlin") || !strings.Contains(body, "2-5 days") {
		t.Error("status line missing seller location or lead time")
	}
}

func TestShopPageCategoryFilter(t *testing.T) {
	h := newTestApp(t, testDoc)
	rec := get(t, h, "/?category=Toys")
	body := rec.Body.String()
	if got := countCards(t, body); got != 1 {
		t.Fatalf("cards = %d, want 1", got)
	}
	if !strings.Contains(body, "Flexi Dino") {
		t.Error("expected the Toys item on the page")
	}
}

func TestShopPageSearch(t *testing.T) {
	h := newTestApp(t, testDoc)
	rec := get(t, h, "/?q=planter")
	if got := countCards(t, rec.Body.String()); got != 1 {
		t.Fatalf("cards = %d, want 1", got)
	}
}

func TestFeaturedBadgeAndQuotePrice(t *testing.T) {
	h := newTestApp(t, testDoc)
	body := get(t, h, "/?category=Custom").Body.String()
	if !strings.Contains(body, "Popular") {
		t.Error("featured item should carry the Popular badge")
	}
	if !strings.Contains(body, "Quote") {
		t.Error("priceless item should show Quote")
	}
}

func TestNoMatchesPlaceholder(t *testing.T) {
	h := newTestApp(t, testDoc)
	body := get(t, h, "/?q=zzzzzz").Body.String()
	if got := countCards(t, body); got != 0 {
		t.Fatalf("cards = %d, want 0", got)
	}
	if !strings.Contains(body, noMatchesCopy) {
		t.Errorf("missing placeholder copy, body: %q", body)
	}
}

func TestGridFragment(t *testing.T) {
	h := newTestApp(t, testDoc)

	rec := get(t, h, "/shop/grid?q=hex")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("HX-Push-Url"); got != "/?q=hex" {
		t.Errorf("HX-Push-Url = %q, want /?q=hex", got)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("fragment should not include the page shell")
	}
	if got := countCards(t, body); got != 1 {
		t.Fatalf("cards = %d, want 1", got)
	}

	// no filters collapses to the bare path
	rec = get(t, h, "/shop/grid")
	if got := rec.Header().Get("HX-Push-Url"); got != "/" {
		t.Errorf("HX-Push-Url = %q, want /", got)
	}
}

func TestWhatsAppLinkOnCard(t *testing.T) {
	h := newTestApp(t, testDoc)
	body := get(t, h, "/?category=Planters").Body.String()
	if !strings.Contains(body, "wa.me/4915112345678?text=") {
		t.Error("card should link to wa.me with the digits-only phone")
	}
	if !strings.Contains(body, "Hex%20Planter") {
		t.Error("order message should use %20 for spaces")
	}
	if strings.Contains(body, "ZgotmplZ") {
		t.Error("a link scheme was rejected by the template engine")
	}
}

func TestPicksRendered(t *testing.T) {
	h := newTestApp(t, testDoc)
	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, "Torture Toaster") {
		t.Error("pick name missing")
	}
	if !strings.Contains(body, "<strong>calibration</strong>") {
		t.Error("pick notes markdown not rendered")
	}
	// the pick without notes falls back to the licensing disclaimer
	if !strings.Contains(body, pickDisclaimer) {
		t.Error("disclaimer fallback missing for a pick without notes")
	}
	if !strings.Contains(body, "Open Model") || !strings.Contains(body, "Request") {
		t.Error("pick card action labels missing")
	}
}

func TestPicksPlaceholder(t *testing.T) {
	doc := `{"seller": {"phoneE164": "+4915112345678", "location": "Berlin", "leadTime": "2-5 days"},
	  "items": [{"id": "a", "name": "A", "category": "Desk", "description": "d",
	    "material": "PLA", "size": "s", "leadTimeDays": 1, "price": 5}]}`
	h := newTestApp(t, doc)
	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, noPicksCopy) {
		t.Errorf("missing picks placeholder, body: %q", body)
	}
}

func TestLoadFailure(t *testing.T) {
	h := newTestApp(t, "") // no catalog file on disk

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, loadFailedCopy) {
		t.Error("failure notice missing from page")
	}
	if got := countCards(t, body); got != 0 {
		t.Fatalf("cards = %d, want 0", got)
	}
	if len(ctaSlots) != 0 {
		t.Error("CTA slots should not bind without a catalog")
	}

	rec = get(t, h, "/catalog.json")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("catalog.json status = %d, want 503", rec.Code)
	}
	var envelope map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope["error"] != "catalog_unavailable" {
		t.Errorf("error = %q, want catalog_unavailable", envelope["error"])
	}
}

func TestCatalogDocRoundTrip(t *testing.T) {
	h := newTestApp(t, testDoc)
	rec := get(t, h, "/catalog.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	var doc catalog.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Items) != 3 || len(doc.CommunityPicks) != 2 {
		t.Fatalf("items = %d picks = %d, want 3 and 2", len(doc.Items), len(doc.CommunityPicks))
	}
}

func TestCTASlotsBound(t *testing.T) {
	newTestApp(t, testDoc)
	if len(ctaSlots) != 5 {
		t.Fatalf("slots = %d, want 5", len(ctaSlots))
	}
	byID := map[string]CTAButton{}
	for _, s := range ctaSlots {
		byID[s.ID] = s
	}
	if _, ok := byID["textGeneral"]; !ok {
		t.Error("textGeneral slot missing")
	}
	if got := string(byID["callGeneral"].Href); got != "tel:+49 151-12345678" {
		t.Errorf("call href = %q", got)
	}
	if !strings.HasPrefix(string(byID["textSignal"].Href), "https://signal.me/#p/") {
		t.Errorf("signal href = %q", byID["textSignal"].Href)
	}
	if byID["textSignal"].Copy == "" {
		t.Error("signal slot should carry a clipboard message")
	}
}

func TestCTASlotDisabledByEmptyLabel(t *testing.T) {
	h := newTestApp(t, testDoc)
	_ = h
	cfg.Site.CTA.Call = ""
	ctaSlots = buildCTASlots(cfg, store)
	for _, s := range ctaSlots {
		if s.ID == "callGeneral" {
			t.Fatal("empty label should drop the slot")
		}
	}
	if len(ctaSlots) != 4 {
		t.Fatalf("slots = %d, want 4", len(ctaSlots))
	}
}
