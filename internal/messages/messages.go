// Package messages holds the fixed chat message templates the storefront
// prefills into deep links. Blank ______ fields are for the requester to
// fill in before sending.
package messages

import (
	"fmt"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
)

// Order is the per-item order message.
func Order(it catalog.Item, seller catalog.Seller) string {
	return fmt.Sprintf(`Hi! I want to order: %s
Category: %s
Material: %s
Size: %s
Requested color(s): ______
Quantity: ____
Pickup: %s`, it.Name, it.Category, it.Material, it.Size, seller.Location)
}

// GeneralInquiry is the message behind the general contact button.
func GeneralInquiry(seller catalog.Seller) string {
	return fmt.Sprintf(`Hi! I'm looking at your 3D print catalog.
I want to ask about: ______
Pickup: %s`, seller.Location)
}

// CustomQuote is the message behind the custom quote button.
func CustomQuote() string {
	return "Hi! I want a custom 3D print quote. I'm looking for: ______"
}

// ModelLinkRequest is the message behind the "send a model link" button.
func ModelLinkRequest(seller catalog.Seller) string {
	return fmt.Sprintf(`Hi! I found a model online and want a quote.
Model link: ______
Site: Printables / MakerWorld
Desired size (approx): ______
Color(s): ______
Quantity: ______
Pickup: %s`, seller.Location)
}

// PickRequest is the per-pick request message, embedding where the model
// lives so the maker can check it before quoting.
func PickRequest(p catalog.Pick, seller catalog.Seller) string {
	return fmt.Sprintf(`Hi! I'd like a quote for this community pick: %s
Source: %s
Link: %s
Desired size (approx): ______
Color(s): ______
Quantity: ______
Pickup: %s`, p.Name, p.Source, p.URL, seller.Location)
}
