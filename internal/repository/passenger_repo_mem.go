package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/google/uuid"
)

var ErrPassengerNotFound = errors.New("passenger not found")

type PassengerRepository interface {
	Save(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Passenger, error)
	List(ctx context.Context) ([]*domain.Passenger, error)
}

// MemPassengerRepository keeps passengers for the lifetime of the process.
type MemPassengerRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.Passenger
	order []uuid.UUID
}

func NewPassengerRepository() PassengerRepository {
	return &MemPassengerRepository{byID: make(map[uuid.UUID]*domain.Passenger)}
}

func (r *MemPassengerRepository) Save(ctx context.Context, passenger *domain.Passenger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !passenger.Valid() {
		return errors.New("passenger has no id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[passenger.ID]; !ok {
		r.order = append(r.order, passenger.ID)
	}
	r.byID[passenger.ID] = passenger
	return nil
}

func (r *MemPassengerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Passenger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrPassengerNotFound
	}
	return p, nil
}

func (r *MemPassengerRepository) List(ctx context.Context) ([]*domain.Passenger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Passenger, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ PassengerRepository = (*MemPassengerRepository)(nil)
