package main

import (
	"html/template"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
	"github.com/Dangiteric/3DPrinting/internal/links"
	"github.com/Dangiteric/3DPrinting/internal/markdown"
	"github.com/Dangiteric/3DPrinting/internal/messages"
)

const (
	noPicksCopy    = "No community picks yet. Check back soon."
	pickDisclaimer = "Model by its designer; check the license on the source page. We print it on request."
	pickPriceLabel = "Pick"
)

// PicksView is the community picks section below the grid.
type PicksView struct {
	Empty     bool
	EmptyCopy string
	Picks     []PickCard
}

// PickCard is one community-curated model with a link to its source page
// and a prefilled print request.
type PickCard struct {
	Name       string
	Source     string
	URL        string
	PriceLabel string
	Notes      template.HTML
	RequestURL string
}

func buildPicksView(st *catalog.Store) PicksView {
	if !st.Ready() {
		return PicksView{Empty: true, EmptyCopy: noPicksCopy}
	}
	picks := st.Picks()
	if len(picks) == 0 {
		return PicksView{Empty: true, EmptyCopy: noPicksCopy}
	}

	var v PicksView
	seller := st.Seller()
	v.Picks = make([]PickCard, 0, len(picks))
	for _, p := range picks {
		v.Picks = append(v.Picks, PickCard{
			Name:       p.Name,
			Source:     p.Source,
			URL:        p.URL,
			PriceLabel: pickPriceLabel,
			Notes:      pickNotes(p.Notes),
			RequestURL: links.WhatsApp(seller.PhoneE164, messages.PickRequest(p, seller)),
		})
	}
	return v
}

// pickNotes renders a pick's markdown notes, falling back to the licensing
// disclaimer when the pick carries none.
func pickNotes(notes string) template.HTML {
	if notes == "" {
		return pickDisclaimer
	}
	out, err := markdown.Render(notes)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(notes))
	}
	return out
}
