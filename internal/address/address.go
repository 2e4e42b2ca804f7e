package address

import "github.com/google/uuid"

// DeliveryAddress is a saved drop-off location. Orders copy the full address
// by value so later edits never rewrite order history.
type DeliveryAddress struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	BusinessName string    `json:"business_name"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Instructions string    `json:"instructions,omitempty"`
	IsDefault    bool      `json:"is_default"`
}
