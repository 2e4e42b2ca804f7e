package cart

import (
	"context"

	"github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	"github.com/MohamedSultan7/davinci-bakers/internal/moq"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Issue describes one cart line that failed validation.
type Issue struct {
	ProductID uuid.UUID      `json:"product_id"`
	SKU       string         `json:"sku"`
	Code      pkgerrors.Code `json:"code"`
	Message   string         `json:"message"`
	Details   any            `json:"details,omitempty"`
}

// Service is the cart engine. Writing a line that already exists replaces its
// quantity rather than adding to it.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Upsert(ctx context.Context, userID, productID uuid.UUID, qty int) (*Cart, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Validate(ctx context.Context, userID uuid.UUID) ([]Issue, error)
	Replace(ctx context.Context, userID uuid.UUID, lines []Line) (*Cart, error)
}

// Line is a requested product and quantity, used when rebuilding a cart
// wholesale (reorders).
type Line struct {
	ProductID uuid.UUID
	Quantity  int
}

type service struct {
	repo     *Repository
	products *catalog.Repository
	policy   *moq.Policy
	logg     *logger.Logger
}

func NewService(repo *Repository, products *catalog.Repository, policy *moq.Policy, logg *logger.Logger) Service {
	if repo == nil {
		panic("cart: repo is required")
	}
	if products == nil {
		panic("cart: product repository is required")
	}
	if policy == nil {
		panic("cart: quantity policy is required")
	}
	if logg == nil {
		panic("cart: logger is required")
	}
	return &service{repo: repo, products: products, policy: policy, logg: logg}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	items := s.repo.Items(ctx, userID)
	return s.assemble(userID, items), nil
}

func (s *service) Upsert(ctx context.Context, userID, productID uuid.UUID, qty int) (*Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Validate(ctx, productID, qty, product.Inventory); err != nil {
		return nil, err
	}

	items, err := s.repo.Mutate(ctx, userID, func(items []Item) ([]Item, error) {
		line := buildItem(product, qty)
		for i, existing := range items {
			if existing.ProductID == productID {
				items[i] = line
				return items, nil
			}
		}
		return append(items, line), nil
	})
	if err != nil {
		return nil, err
	}
	return s.assemble(userID, items), nil
}

func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) (*Cart, error) {
	items, err := s.repo.Mutate(ctx, userID, func(items []Item) ([]Item, error) {
		kept := items[:0]
		for _, item := range items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}
	return s.assemble(userID, items), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	s.repo.Clear(ctx, userID)
	return nil
}

// Validate re-checks every line against the current catalog and quantity
// rules without mutating the cart. An empty slice means the cart is valid.
func (s *service) Validate(ctx context.Context, userID uuid.UUID) ([]Issue, error) {
	items := s.repo.Items(ctx, userID)

	var issues []Issue
	var combined error
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			issues = append(issues, issueFromError(item, err))
			combined = multierr.Append(combined, err)
			continue
		}
		if err := s.policy.Validate(ctx, item.ProductID, item.Quantity, product.Inventory); err != nil {
			issues = append(issues, issueFromError(item, err))
			combined = multierr.Append(combined, err)
		}
	}
	if combined != nil {
		s.logg.Warn(s.logg.WithField(ctx, "issues", multierr.Errors(combined)), "cart failed validation")
	}
	return issues, nil
}

// Replace rebuilds the cart from the given lines at current catalog prices.
// Lines whose product is gone, out of stock or off-policy are dropped.
func (s *service) Replace(ctx context.Context, userID uuid.UUID, lines []Line) (*Cart, error) {
	next := make([]Item, 0, len(lines))
	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			continue
		}
		if err := s.policy.Validate(ctx, line.ProductID, line.Quantity, product.Inventory); err != nil {
			continue
		}
		next = append(next, buildItem(product, line.Quantity))
	}

	items, err := s.repo.Mutate(ctx, userID, func([]Item) ([]Item, error) {
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return s.assemble(userID, items), nil
}

func (s *service) assemble(userID uuid.UUID, items []Item) *Cart {
	return &Cart{
		UserID:    userID,
		Items:     items,
		Totals:    ComputeTotals(items),
		UpdatedAt: nowUTC(),
	}
}

func buildItem(product *catalog.Product, qty int) Item {
	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}
	return Item{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		ImageURL:  imageURL,
		UnitPrice: product.Price,
		Quantity:  qty,
		LineTotal: product.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
}

func issueFromError(item Item, err error) Issue {
	typed := pkgerrors.As(err)
	if typed == nil {
		return Issue{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Code:      pkgerrors.CodeInternal,
			Message:   err.Error(),
		}
	}
	return Issue{
		ProductID: item.ProductID,
		SKU:       item.SKU,
		Code:      typed.Code(),
		Message:   typed.Message(),
		Details:   typed.Details(),
	}
}
