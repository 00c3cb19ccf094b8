package flights

import (
	"context"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightSummary, error)
	GetByNumber(ctx context.Context, number int) (*domain.FlightSummary, error)
}

// FlightReader is the read side of the flight registry.
type FlightReader interface {
	Board(ctx context.Context) ([]domain.FlightSummary, error)
	FlightSummary(ctx context.Context, number int) (*domain.FlightSummary, error)
}

// BoardCache is read-only here. The registry keeps it current itself, so a
// miss falls through to the registry and nothing is written back.
type BoardCache interface {
	GetBoard(ctx context.Context) ([]domain.FlightSummary, error)
}

type FlightService struct {
	registry FlightReader
	cache    BoardCache
}

func NewFlightService(registry FlightReader, cache BoardCache) *FlightService {
	return &FlightService{registry: registry, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetBoard(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	return s.registry.Board(ctx)
}

func (s *FlightService) GetByNumber(ctx context.Context, number int) (*domain.FlightSummary, error) {
	return s.registry.FlightSummary(ctx, number)
}

var (
	_ FlightUseCase = (*FlightService)(nil)
	_ FlightReader  = (*booking.BookingService)(nil)
)
