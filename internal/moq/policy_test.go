package moq

import (
	"context"
	"testing"

	"github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	"github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

func TestResolveFallsBackToUnitQuantities(t *testing.T) {
	policy := NewPolicy(SeedRules())

	rule := policy.Resolve(context.Background(), uuid.New())
	if rule.MinOrderQty != 1 || rule.Increment != 1 || rule.DefaultQty != 1 {
		t.Fatalf("expected unit rule for unconfigured product, got %+v", rule)
	}
}

func TestValidateOrderedChecks(t *testing.T) {
	policy := NewPolicy([]Rule{
		{ProductID: catalog.ProductButterCroissant, MinOrderQty: 6, Increment: 6, DefaultQty: 6},
	})
	ctx := context.Background()

	cases := []struct {
		name      string
		qty       int
		inventory int
		wantCode  errors.Code
		suggested int
	}{
		{name: "below minimum", qty: 3, inventory: 100, wantCode: errors.CodeMinQtyNotMet, suggested: 6},
		{name: "zero quantity", qty: 0, inventory: 100, wantCode: errors.CodeMinQtyNotMet, suggested: 6},
		{name: "off increment", qty: 8, inventory: 100, wantCode: errors.CodeInvalidIncrement, suggested: 12},
		{name: "off increment high", qty: 19, inventory: 100, wantCode: errors.CodeInvalidIncrement, suggested: 24},
		{name: "exceeds inventory", qty: 12, inventory: 6, wantCode: errors.CodeInsufficientInventory},
		{name: "minimum wins over inventory", qty: 2, inventory: 0, wantCode: errors.CodeMinQtyNotMet, suggested: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Validate(ctx, catalog.ProductButterCroissant, tc.qty, tc.inventory)
			typed := errors.As(err)
			if typed == nil {
				t.Fatalf("expected error, got %v", err)
			}
			if typed.Code() != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, typed.Code())
			}
			if tc.suggested > 0 {
				suggestion, ok := typed.Details().(Suggestion)
				if !ok {
					t.Fatalf("expected suggestion details, got %T", typed.Details())
				}
				if suggestion.SuggestedQty != tc.suggested {
					t.Fatalf("expected suggested qty %d, got %d", tc.suggested, suggestion.SuggestedQty)
				}
			}
		})
	}
}

func TestValidateAcceptsAlignedQuantities(t *testing.T) {
	policy := NewPolicy(SeedRules())
	ctx := context.Background()

	for _, qty := range []int{6, 12, 18, 60} {
		if err := policy.Validate(ctx, catalog.ProductButterCroissant, qty, 100); err != nil {
			t.Fatalf("expected qty %d to pass, got %v", qty, err)
		}
	}
}

func TestValidateUnconfiguredProductOnlyChecksInventory(t *testing.T) {
	policy := NewPolicy(nil)
	ctx := context.Background()
	id := uuid.New()

	if err := policy.Validate(ctx, id, 1, 10); err != nil {
		t.Fatalf("expected single unit to pass, got %v", err)
	}
	err := policy.Validate(ctx, id, 11, 10)
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeInsufficientInventory {
		t.Fatalf("expected INSUFFICIENT_INVENTORY, got %v", err)
	}
}
