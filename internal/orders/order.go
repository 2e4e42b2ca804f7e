package orders

import (
	"time"

	"github.com/MohamedSultan7/davinci-bakers/internal/address"
	"github.com/MohamedSultan7/davinci-bakers/internal/cart"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/google/uuid"
)

// Order is a placed wholesale order. Lines, totals and the delivery address
// are copied by value at placement so catalog and address edits never touch
// order history.
type Order struct {
	ID            uuid.UUID               `json:"id"`
	Number        string                  `json:"number"`
	UserID        uuid.UUID               `json:"user_id"`
	Status        enums.OrderStatus       `json:"status"`
	PaymentStatus enums.PaymentStatus     `json:"payment_status"`
	Items         []cart.Item             `json:"items"`
	Totals        cart.Totals             `json:"totals"`
	Address       address.DeliveryAddress `json:"address"`
	RequestedDate time.Time               `json:"requested_date"`
	PONumber      string                  `json:"po_number,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	PlacedAt      time.Time               `json:"placed_at"`
	DeliveredAt   *time.Time              `json:"delivered_at,omitempty"`
}

// CreateInput carries the checkout payload.
type CreateInput struct {
	AddressID     uuid.UUID
	RequestedDate string
	PONumber      string
	Notes         string
}
