package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, unitPrice string, qty int) Item {
	t.Helper()
	price, err := decimal.NewFromString(unitPrice)
	require.NoError(t, err)
	return Item{
		ProductID: uuid.New(),
		UnitPrice: price,
		Quantity:  qty,
		LineTotal: price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		items    []Item
		subtotal string
		tax      string
		shipping string
		total    string
	}{
		{
			name:     "empty cart",
			items:    nil,
			subtotal: "0",
			tax:      "0",
			shipping: "15",
			total:    "15",
		},
		{
			name:     "below free shipping",
			items:    []Item{line(t, "2.50", 12), line(t, "1.25", 24)},
			subtotal: "60",
			tax:      "5.40",
			shipping: "15",
			total:    "80.40",
		},
		{
			name:     "exactly at threshold still pays shipping",
			items:    []Item{line(t, "1.25", 60)},
			subtotal: "75",
			tax:      "6.75",
			shipping: "15",
			total:    "96.75",
		},
		{
			name:     "above threshold ships free",
			items:    []Item{line(t, "34.00", 3)},
			subtotal: "102",
			tax:      "9.18",
			shipping: "0",
			total:    "111.18",
		},
		{
			name:     "tax rounds to cents",
			items:    []Item{line(t, "3.25", 5)},
			subtotal: "16.25",
			tax:      "1.46",
			shipping: "15",
			total:    "32.71",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.items)
			assert.True(t, totals.Subtotal.Equal(mustParse(t, tc.subtotal)), "subtotal %s", totals.Subtotal)
			assert.True(t, totals.Tax.Equal(mustParse(t, tc.tax)), "tax %s", totals.Tax)
			assert.True(t, totals.Shipping.Equal(mustParse(t, tc.shipping)), "shipping %s", totals.Shipping)
			assert.True(t, totals.Total.Equal(mustParse(t, tc.total)), "total %s", totals.Total)
		})
	}
}

func mustParse(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}
