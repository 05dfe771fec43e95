package main

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
	"github.com/Dangiteric/3DPrinting/internal/config"
	"github.com/Dangiteric/3DPrinting/internal/format"
	"github.com/Dangiteric/3DPrinting/internal/links"
	"github.com/Dangiteric/3DPrinting/internal/messages"
	"github.com/Dangiteric/3DPrinting/internal/query"
)

// User-visible copy for the storefront grid states.
const (
	noMatchesCopy  = "No matches. Try a different search or category."
	loadFailedCopy = "Failed to load catalog.json. Check your file names and try again."
)

// ShopView aggregates all state required to render the storefront grid and
// its controls, for both the full page and the htmx fragment.
type ShopView struct {
	Search   string
	Category string
	Sort     string
	// Query is the canonical non-empty query string for HX-Push-Url.
	Query string

	Categories  []string
	SortOptions []SortOption

	Status    string
	Failed    bool
	Empty     bool
	EmptyCopy string
	Items     []ItemCard
}

// SortOption is one entry of the fixed sort selector.
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// ItemCard is the view model for a single catalog card.
type ItemCard struct {
	ID          string
	Name        string
	Badge       string
	Featured    bool
	Price       string
	Description string
	Pills       []string
	WhatsAppURL string
	// sgnl: is not on html/template's safe-scheme list, so the link must be
	// pre-approved here rather than in the template.
	SignalURL template.URL
}

// CTAButton is a bound call-to-action slot. Slots with no label never make
// it into the slice.
type CTAButton struct {
	ID    string
	Label string
	Href  template.URL
	// Copy is an optional clipboard payload for channels whose links cannot
	// carry a prefilled message.
	Copy string
}

func buildShopView(st *catalog.Store, values url.Values) ShopView {
	v := ShopView{
		Search:   values.Get("q"),
		Category: values.Get("category"),
		Sort:     values.Get("sort"),
	}
	if v.Category == "" {
		v.Category = query.CategoryAll
	}
	v.SortOptions = sortOptions(v.Sort)
	v.Query = canonicalQuery(v)

	if !st.Ready() {
		v.Failed = true
		v.Status = loadFailedCopy
		return v
	}

	v.Categories = st.Categories()
	seller := st.Seller()
	items := query.Filter(st.Items(), query.Params{
		Search:   v.Search,
		Category: v.Category,
		Sort:     v.Sort,
	})
	v.Status = fmt.Sprintf("%d item(s) shown • %s • Typical lead time: %s",
		len(items), seller.Location, seller.LeadTime)

	if len(items) == 0 {
		v.Empty = true
		v.EmptyCopy = noMatchesCopy
		return v
	}

	v.Items = make([]ItemCard, 0, len(items))
	for _, it := range items {
		v.Items = append(v.Items, buildItemCard(it, seller))
	}
	return v
}

func buildItemCard(it catalog.Item, seller catalog.Seller) ItemCard {
	msg := messages.Order(it, seller)
	badge := it.Category
	if it.Featured {
		badge = "Popular"
	}
	return ItemCard{
		ID:          it.ID,
		Name:        it.Name,
		Badge:       badge,
		Featured:    it.Featured,
		Price:       format.Money(it.Price),
		Description: it.Description,
		Pills:       []string{it.Category, it.Material, it.Size, format.Days(it.LeadTimeDays)},
		WhatsAppURL: links.WhatsApp(seller.PhoneE164, msg),
		SignalURL:   template.URL(links.SignalApp(seller.PhoneE164, msg)),
	}
}

func sortOptions(selected string) []SortOption {
	opts := []SortOption{
		{Value: query.SortFeatured, Label: "Featured"},
		{Value: query.SortPriceAsc, Label: "Price: low to high"},
		{Value: query.SortPriceDesc, Label: "Price: high to low"},
		{Value: query.SortNameAsc, Label: "Name A-Z"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == selected
	}
	return opts
}

func canonicalQuery(v ShopView) string {
	q := url.Values{}
	if strings.TrimSpace(v.Search) != "" {
		q.Set("q", v.Search)
	}
	if v.Category != "" && v.Category != query.CategoryAll {
		q.Set("category", v.Category)
	}
	if v.Sort != "" {
		q.Set("sort", v.Sort)
	}
	return q.Encode()
}

// buildCTASlots binds the static call-to-action buttons once at startup.
// Every slot is individually optional: an empty label skips it, and nothing
// binds when the catalog never became ready.
func buildCTASlots(cfg *config.Config, st *catalog.Store) []CTAButton {
	if !st.Ready() {
		return nil
	}
	seller := st.Seller()
	cta := cfg.Site.CTA

	var out []CTAButton
	if cta.General != "" {
		out = append(out, CTAButton{
			ID:    "textGeneral",
			Label: cta.General,
			Href:  template.URL(links.WhatsApp(seller.PhoneE164, messages.GeneralInquiry(seller))),
		})
	}
	if cta.Call != "" {
		out = append(out, CTAButton{
			ID:    "callGeneral",
			Label: cta.Call,
			Href:  template.URL(links.Tel(seller.PhoneE164)),
		})
	}
	if cta.ModelLink != "" {
		out = append(out, CTAButton{
			ID:    "textFromLink",
			Label: cta.ModelLink,
			Href:  template.URL(links.WhatsApp(seller.PhoneE164, messages.ModelLinkRequest(seller))),
		})
	}
	if cta.CustomQuote != "" {
		out = append(out, CTAButton{
			ID:    "textCustom",
			Label: cta.CustomQuote,
			Href:  template.URL(links.WhatsApp(seller.PhoneE164, messages.CustomQuote())),
		})
	}
	if cta.Secondary != "" {
		// signal.me cannot carry a message; the inquiry text goes onto the
		// clipboard instead, best-effort.
		out = append(out, CTAButton{
			ID:    "textSignal",
			Label: cta.Secondary,
			Href:  template.URL(links.SignalWeb(seller.PhoneE164)),
			Copy:  messages.GeneralInquiry(seller),
		})
	}
	return out
}
