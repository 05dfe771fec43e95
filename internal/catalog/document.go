package catalog

// Seller describes the maker behind the storefront. Phone numbers are kept in
// international dial format and are passed through to link builders as-is.
type Seller struct {
	PhoneE164 string `json:"phoneE164"`
	Location  string `json:"location"`
	LeadTime  string `json:"leadTime"`
}

// Item is a single made-to-order catalog entry. Price 0 means the maker
// quotes on request; optional fields simply stay at their zero values.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Material     string   `json:"material"`
	Size         string   `json:"size"`
	LeadTimeDays int      `json:"leadTimeDays"`
	Price        float64  `json:"price,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// Pick is an externally hosted model recommended by the maker community.
type Pick struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	URL    string `json:"url"`
	Notes  string `json:"notes,omitempty"`
}

// Document is the catalog document served by the storefront. It is parsed
// once at startup and treated as immutable afterwards; item IDs are assumed
// unique and never checked here.
type Document struct {
	Seller         Seller `json:"seller"`
	Items          []Item `json:"items"`
	CommunityPicks []Pick `json:"community_picks,omitempty"`
}
