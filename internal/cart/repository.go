package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository stores one open cart per user. Mutations for the same user are
// serialized by a per-user lock so concurrent writes from two tabs cannot
// interleave a read-modify-write.
type Repository struct {
	mu    sync.Mutex
	carts map[uuid.UUID][]Item
	locks map[uuid.UUID]*sync.Mutex
}

func NewRepository() *Repository {
	return &Repository{
		carts: make(map[uuid.UUID][]Item),
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *Repository) userLock(userID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}

// Items returns a snapshot of the user's cart lines. A user with no cart has
// an empty one.
func (r *Repository) Items(ctx context.Context, userID uuid.UUID) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Item{}, r.carts[userID]...)
}

// Mutate runs fn against the user's current lines under the per-user lock and
// stores whatever fn returns.
func (r *Repository) Mutate(ctx context.Context, userID uuid.UUID, fn func(items []Item) ([]Item, error)) ([]Item, error) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current := r.Items(ctx, userID)
	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.carts[userID] = append([]Item{}, next...)
	r.mu.Unlock()
	return next, nil
}

// Clear drops the user's cart entirely.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	delete(r.carts, userID)
	r.mu.Unlock()
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
