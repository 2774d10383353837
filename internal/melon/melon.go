package melon

import "github.com/shopspring/decimal"

// Melon represents one melon in the catalog. Records are built once at
// startup by a loader and never mutated afterwards, so they are safe to
// share between requests.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Melon struct {
	ID         string          `json:"melonId"`
	CommonName string          `json:"commonName"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	FleshColor string          `json:"fleshColor,omitempty"`
	RindColor  string          `json:"rindColor,omitempty"`
	Seedless   bool            `json:"seedless"`
	Tags       []string        `json:"tags,omitempty"`
}

// PriceStr formats the price for display, e.g. "$6.00".
func (m Melon) PriceStr() string {
	return "$" + m.Price.StringFixed(2)
}
