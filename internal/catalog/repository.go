package catalog

import (
	"context"
	"sync"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

// Repository holds the seeded product and category reference data. Reads far
// outnumber writes (only restocks mutate), so a RWMutex is enough.
type Repository struct {
	mu         sync.RWMutex
	products   []Product
	bySKU      map[string]int
	byID       map[uuid.UUID]int
	categories []Category
}

// NewRepository builds an in-memory catalog from the provided seed data.
func NewRepository(products []Product, categories []Category) *Repository {
	repo := &Repository{
		products:   append([]Product{}, products...),
		bySKU:      make(map[string]int, len(products)),
		byID:       make(map[uuid.UUID]int, len(products)),
		categories: append([]Category{}, categories...),
	}
	for i, p := range repo.products {
		repo.bySKU[p.SKU] = i
		repo.byID[p.ID] = i
	}
	return repo
}

// All returns a snapshot of every product in seed order.
func (r *Repository) All(ctx context.Context) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Product{}, r.products...)
}

// FindByID returns the product with the given id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeProductNotFound, "product not found")
	}
	product := r.products[idx]
	return &product, nil
}

// FindBySKU returns the product carrying the given business key.
func (r *Repository) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.bySKU[sku]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeProductNotFound, "product not found")
	}
	product := r.products[idx]
	return &product, nil
}

// Categories returns all categories, unfiltered.
func (r *Repository) Categories(ctx context.Context) []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Category{}, r.categories...)
}

// SetInventory overwrites a product's on-hand count. Restock path only.
func (r *Repository) SetInventory(ctx context.Context, id uuid.UUID, inventory int) error {
	if inventory < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "inventory cannot be negative")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byID[id]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeProductNotFound, "product not found")
	}
	r.products[idx].Inventory = inventory
	return nil
}
