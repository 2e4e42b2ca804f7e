package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	taxRate           = decimal.NewFromFloat(0.09)
	flatShipping      = decimal.NewFromInt(15)
	freeShippingAbove = decimal.NewFromInt(75)
)

// Item is one cart line. UnitPrice is snapshotted from the catalog when the
// line is written, so later price changes do not move an open cart.
type Item struct {
	ProductID uuid.UUID       `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Cart is a buyer's open cart with derived totals. Totals are recomputed on
// every read and write; they are never stored independently of the lines.
type Cart struct {
	UserID    uuid.UUID `json:"user_id"`
	Items     []Item    `json:"items"`
	Totals    Totals    `json:"totals"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals is the money breakdown for a cart or order.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the money breakdown from cart lines. Tax is 9% of the
// subtotal, shipping is a flat 15 waived strictly above 75, and every derived
// figure is rounded to cents.
func ComputeTotals(items []Item) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxRate).Round(2)

	shipping := flatShipping
	if subtotal.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping).Round(2),
	}
}
