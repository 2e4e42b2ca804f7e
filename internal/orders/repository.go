package orders

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

// Repository is the in-memory order book. Orders are kept newest first and
// the number counter continues from the seeded history.
type Repository struct {
	mu      sync.RWMutex
	orders  []Order
	byID    map[uuid.UUID]int
	counter int
}

// NewRepository seeds the order book. Seed orders are expected newest first.
func NewRepository(seed []Order) *Repository {
	r := &Repository{
		orders:  append([]Order{}, seed...),
		byID:    make(map[uuid.UUID]int, len(seed)),
		counter: len(seed) + 1,
	}
	for i, order := range r.orders {
		r.byID[order.ID] = i
	}
	return r
}

// NextNumber issues the next order number and advances the counter.
func (r *Repository) NextNumber(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	number := fmt.Sprintf("BB-2024-%03d", r.counter)
	r.counter++
	return number
}

// Insert prepends the order so listings come back newest first.
func (r *Repository) Insert(ctx context.Context, order Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]Order{order}, r.orders...)
	r.byID = make(map[uuid.UUID]int, len(r.orders))
	for i, o := range r.orders {
		r.byID[o.ID] = i
	}
}

// ListByUser returns the user's orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out
}

// FindByUser returns one of the user's orders by id.
func (r *Repository) FindByUser(ctx context.Context, userID, orderID uuid.UUID) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[orderID]
	if !ok || r.orders[idx].UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeOrderNotFound, "order not found")
	}
	order := r.orders[idx]
	return &order, nil
}

// Update overwrites an existing order in place.
func (r *Repository) Update(ctx context.Context, order Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byID[order.ID]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeOrderNotFound, "order not found")
	}
	r.orders[idx] = order
	return nil
}
