package orders

import (
	"time"

	"github.com/MohamedSultan7/davinci-bakers/internal/address"
	"github.com/MohamedSultan7/davinci-bakers/internal/cart"
	"github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	OrderHistoryFirst  = uuid.MustParse("c5d3e2f0-0003-4e00-8000-000000000001")
	OrderHistorySecond = uuid.MustParse("c5d3e2f0-0003-4e00-8000-000000000002")
)

func seedItem(products map[uuid.UUID]catalog.Product, id uuid.UUID, qty int) cart.Item {
	p := products[id]
	imageURL := ""
	if len(p.ImageURLs) > 0 {
		imageURL = p.ImageURLs[0]
	}
	return cart.Item{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		ImageURL:  imageURL,
		UnitPrice: p.Price,
		Quantity:  qty,
		LineTotal: p.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
}

// SeedOrders returns the demo account's order history, newest first.
func SeedOrders(userID uuid.UUID) []Order {
	products := make(map[uuid.UUID]catalog.Product)
	for _, p := range catalog.SeedProducts() {
		products[p.ID] = p
	}
	addresses := address.SeedAddresses()

	secondItems := []cart.Item{
		seedItem(products, catalog.ProductButterCroissant, 24),
		seedItem(products, catalog.ProductBaguette, 10),
	}
	secondPlaced := time.Date(2024, time.March, 18, 7, 30, 0, 0, time.UTC)

	firstItems := []cart.Item{
		seedItem(products, catalog.ProductBriocheBuns, 48),
		seedItem(products, catalog.ProductSourdoughLoaf, 6),
	}
	firstPlaced := time.Date(2024, time.March, 4, 6, 45, 0, 0, time.UTC)
	firstDelivered := time.Date(2024, time.March, 5, 5, 10, 0, 0, time.UTC)

	return []Order{
		{
			ID:            OrderHistorySecond,
			Number:        "BB-2024-002",
			UserID:        userID,
			Status:        enums.OrderStatusPreparing,
			PaymentStatus: enums.PaymentStatusPaid,
			Items:         secondItems,
			Totals:        cart.ComputeTotals(secondItems),
			Address:       addresses[0],
			RequestedDate: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			PlacedAt:      secondPlaced,
		},
		{
			ID:            OrderHistoryFirst,
			Number:        "BB-2024-001",
			UserID:        userID,
			Status:        enums.OrderStatusDelivered,
			PaymentStatus: enums.PaymentStatusPaid,
			Items:         firstItems,
			Totals:        cart.ComputeTotals(firstItems),
			Address:       addresses[1],
			RequestedDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			PlacedAt:      firstPlaced,
			DeliveredAt:   &firstDelivered,
		},
	}
}
