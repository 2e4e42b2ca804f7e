package address

import (
	"context"
	"sync"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes the saved delivery addresses for the demo account book.
type Service interface {
	List(ctx context.Context) ([]DeliveryAddress, error)
	Get(ctx context.Context, id uuid.UUID) (*DeliveryAddress, error)
	Default(ctx context.Context) (*DeliveryAddress, error)
}

type service struct {
	mu        sync.RWMutex
	addresses []DeliveryAddress
	byID      map[uuid.UUID]int
}

func NewService(addresses []DeliveryAddress) Service {
	s := &service{
		addresses: append([]DeliveryAddress{}, addresses...),
		byID:      make(map[uuid.UUID]int, len(addresses)),
	}
	for i, addr := range s.addresses {
		s.byID[addr.ID] = i
	}
	return s
}

func (s *service) List(ctx context.Context) ([]DeliveryAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DeliveryAddress{}, s.addresses...), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*DeliveryAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeAddressNotFound, "delivery address not found")
	}
	addr := s.addresses[idx]
	return &addr, nil
}

func (s *service) Default(ctx context.Context) (*DeliveryAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, addr := range s.addresses {
		if addr.IsDefault {
			copied := addr
			return &copied, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeAddressNotFound, "no default delivery address configured")
}
