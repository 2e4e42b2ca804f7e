package users

import (
	"context"
	"strings"
	"sync"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

// Repository stores accounts in memory with a lowercased email index.
type Repository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
}

func NewRepository(seed []User) *Repository {
	r := &Repository{
		byID:    make(map[uuid.UUID]User, len(seed)),
		byEmail: make(map[string]uuid.UUID, len(seed)),
	}
	for _, user := range seed {
		r.byID[user.ID] = user
		r.byEmail[normalizeEmail(user.Email)] = user.ID
	}
	return r
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Insert adds a new account, rejecting duplicate emails.
func (r *Repository) Insert(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return pkgerrors.New(pkgerrors.CodeUserExists, "an account with this email already exists")
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return nil
}

// Update overwrites an existing account.
func (r *Repository) Update(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return pkgerrors.New(pkgerrors.CodeUserNotFound, "user not found")
	}
	r.byID[user.ID] = user
	return nil
}

// FindByID returns the account with the given id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUserNotFound, "user not found")
	}
	return &user, nil
}

// FindByEmail returns the account with the given email, case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUserNotFound, "user not found")
	}
	user := r.byID[id]
	return &user, nil
}
