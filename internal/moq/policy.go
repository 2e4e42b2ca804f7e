package moq

import (
	"context"
	"sync"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

// Rule is the wholesale quantity policy for one product. Quantities start at
// MinOrderQty and step by Increment; DefaultQty is what the storefront
// pre-fills when a buyer first adds the product.
type Rule struct {
	ProductID   uuid.UUID `json:"product_id"`
	MinOrderQty int       `json:"min_order_qty"`
	Increment   int       `json:"increment"`
	DefaultQty  int       `json:"default_qty"`
}

// Suggestion accompanies a quantity rejection and tells the buyer the nearest
// quantity that would be accepted.
type Suggestion struct {
	RequestedQty int `json:"requested_qty"`
	SuggestedQty int `json:"suggested_qty"`
	MinOrderQty  int `json:"min_order_qty"`
	Increment    int `json:"increment"`
}

// Policy resolves and enforces per-product quantity rules.
type Policy struct {
	mu    sync.RWMutex
	rules map[uuid.UUID]Rule
}

// NewPolicy builds a policy from seeded rules. Products without a rule fall
// back to min 1, increment 1.
func NewPolicy(rules []Rule) *Policy {
	p := &Policy{rules: make(map[uuid.UUID]Rule, len(rules))}
	for _, rule := range rules {
		if rule.MinOrderQty < 1 {
			rule.MinOrderQty = 1
		}
		if rule.Increment < 1 {
			rule.Increment = 1
		}
		if rule.DefaultQty < rule.MinOrderQty {
			rule.DefaultQty = rule.MinOrderQty
		}
		p.rules[rule.ProductID] = rule
	}
	return p
}

// Resolve returns the rule for a product, defaulting to unit quantities when
// no rule is configured.
func (p *Policy) Resolve(ctx context.Context, productID uuid.UUID) Rule {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if rule, ok := p.rules[productID]; ok {
		return rule
	}
	return Rule{ProductID: productID, MinOrderQty: 1, Increment: 1, DefaultQty: 1}
}

// Validate checks a requested quantity against the product's rule and the
// available inventory. Checks run in a fixed order so a quantity that is both
// below minimum and off-increment always reports the minimum first.
func (p *Policy) Validate(ctx context.Context, productID uuid.UUID, qty, inventory int) error {
	rule := p.Resolve(ctx, productID)

	if qty < rule.MinOrderQty {
		return pkgerrors.New(pkgerrors.CodeMinQtyNotMet, "quantity below minimum order quantity").
			WithDetails(Suggestion{
				RequestedQty: qty,
				SuggestedQty: rule.MinOrderQty,
				MinOrderQty:  rule.MinOrderQty,
				Increment:    rule.Increment,
			})
	}

	if offset := qty - rule.MinOrderQty; offset%rule.Increment != 0 {
		steps := (offset + rule.Increment - 1) / rule.Increment
		return pkgerrors.New(pkgerrors.CodeInvalidIncrement, "quantity does not align with order increment").
			WithDetails(Suggestion{
				RequestedQty: qty,
				SuggestedQty: rule.MinOrderQty + steps*rule.Increment,
				MinOrderQty:  rule.MinOrderQty,
				Increment:    rule.Increment,
			})
	}

	if qty > inventory {
		return pkgerrors.New(pkgerrors.CodeInsufficientInventory, "requested quantity exceeds available inventory").
			WithDetails(map[string]int{
				"requested_qty":       qty,
				"available_inventory": inventory,
			})
	}

	return nil
}
