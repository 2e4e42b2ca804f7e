package catalog

import (
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the immutable catalog record for one bakery SKU. Inventory is
// the only field mutated after seeding (by external restock, not by orders).
type Product struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	ImageURLs     []string        `json:"image_urls"`
	CategoryID    uuid.UUID       `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Price         decimal.Decimal `json:"price"`
	Inventory     int             `json:"inventory"`
	Tags          []string        `json:"tags"`
	Allergens     []string        `json:"allergens"`
	LeadTimeDays  int             `json:"lead_time_days"`
	AvailableDays []enums.Weekday `json:"available_days"`
}

// Category is reference data for grouping products.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Filters captures the optional listing criteria.
type Filters struct {
	Search     string
	CategoryID *uuid.UUID
	Tags       []string
	Page       int
	PageSize   int
}
