package orders

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/internal/address"
	"github.com/MohamedSultan7/davinci-bakers/internal/cart"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/pagination"
	"github.com/MohamedSultan7/davinci-bakers/pkg/types"
	"github.com/google/uuid"
)

// progressChance is how often a status read advances the simulated
// fulfillment by one step.
const progressChance = 0.3

const requestedDateLayout = "2006-01-02"

// Service is the order engine.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*Order, error)
	List(ctx context.Context, userID uuid.UUID, status enums.OrderStatus, params pagination.Params) (*types.Paginated[Order], error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error)
	Reorder(ctx context.Context, userID, orderID uuid.UUID) (*cart.Cart, error)
}

type service struct {
	repo      *Repository
	carts     cart.Service
	addresses address.Service
	logg      *logger.Logger
	roll      func() float64
	now       func() time.Time
}

// NewService wires the order engine. roll drives the simulated fulfillment
// progression; pass nil for the default random source.
func NewService(repo *Repository, carts cart.Service, addresses address.Service, logg *logger.Logger, roll func() float64) Service {
	if repo == nil {
		panic("orders: repo is required")
	}
	if carts == nil {
		panic("orders: cart service is required")
	}
	if addresses == nil {
		panic("orders: address service is required")
	}
	if logg == nil {
		panic("orders: logger is required")
	}
	if roll == nil {
		roll = rand.Float64
	}
	return &service{
		repo:      repo,
		carts:     carts,
		addresses: addresses,
		logg:      logg,
		roll:      roll,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create places an order from the user's cart. Checks run in a fixed order:
// empty cart, then address, then a fresh cart validation.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*Order, error) {
	current, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot place an order from an empty cart")
	}

	addr, err := s.addresses.Get(ctx, input.AddressID)
	if err != nil {
		return nil, err
	}

	issues, err := s.carts.Validate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeCartInvalid, "cart failed validation").
			WithDetails(issues)
	}

	requestedDate, err := parseRequestedDate(input.RequestedDate)
	if err != nil {
		return nil, err
	}

	order := Order{
		ID:            uuid.New(),
		Number:        s.repo.NextNumber(ctx),
		UserID:        userID,
		Status:        enums.OrderStatusPlaced,
		PaymentStatus: enums.PaymentStatusPaid,
		Items:         append([]cart.Item{}, current.Items...),
		Totals:        current.Totals,
		Address:       *addr,
		RequestedDate: requestedDate,
		PONumber:      strings.TrimSpace(input.PONumber),
		Notes:         input.Notes,
		PlacedAt:      s.now(),
	}
	s.repo.Insert(ctx, order)

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"order_number": order.Number,
		"order_total":  order.Totals.Total.String(),
	}), "order placed")
	return &order, nil
}

// List returns the user's orders newest first, optionally narrowed to one
// status. An empty status means all.
func (s *service) List(ctx context.Context, userID uuid.UUID, status enums.OrderStatus, params pagination.Params) (*types.Paginated[Order], error) {
	all := s.repo.ListByUser(ctx, userID)
	if status != "" {
		filtered := make([]Order, 0, len(all))
		for _, order := range all {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		all = filtered
	}
	params = params.Normalize()
	start, end := params.Bounds(len(all))
	return &types.Paginated[Order]{
		Data:       all[start:end],
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      len(all),
		TotalPages: params.TotalPages(len(all)),
	}, nil
}

// Get returns one order and occasionally advances its simulated fulfillment
// by a single step. Terminal orders never move again.
func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error) {
	order, err := s.repo.FindByUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.IsTerminal() && s.roll() < progressChance {
		if next, ok := order.Status.Next(); ok {
			order.Status = next
			if next == enums.OrderStatusDelivered && order.DeliveredAt == nil {
				deliveredAt := s.now()
				order.DeliveredAt = &deliveredAt
			}
			if err := s.repo.Update(ctx, *order); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// Reorder rebuilds the user's cart from a past order at current catalog
// prices. Lines that can no longer be fulfilled are dropped silently.
func (s *service) Reorder(ctx context.Context, userID, orderID uuid.UUID) (*cart.Cart, error) {
	order, err := s.repo.FindByUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, cart.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return s.carts.Replace(ctx, userID, lines)
}

func parseRequestedDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(requestedDateLayout, value)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "requested_date must be YYYY-MM-DD")
	}
	return parsed.UTC(), nil
}
