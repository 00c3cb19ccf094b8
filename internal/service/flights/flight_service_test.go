package flights

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/Domenick1991/flightregistry/internal/repository"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightReader struct {
	mock.Mock
}

func (m *MockFlightReader) Board(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightReader) FlightSummary(ctx context.Context, number int) (*domain.FlightSummary, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightSummary), args.Error(1)
}

type MockBoardCache struct {
	mock.Mock
}

func (m *MockBoardCache) GetBoard(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func testBoard() []domain.FlightSummary {
	return []domain.FlightSummary{
		{Number: 123, PlaneModel: "Boeing 747", Origin: "MCI", Destination: "LAX", DepartureTime: "2/13/19 3:00PM", BasePrice: 400},
	}
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockReader := &MockFlightReader{}
	mockCache := &MockBoardCache{}
	service := NewFlightService(mockReader, mockCache)
	ctx := context.Background()
	board := testBoard()

	// Кэш пустой
	mockCache.On("GetBoard", ctx).Return(([]domain.FlightSummary)(nil), nil).Once()
	mockReader.On("Board", ctx).Return(board, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, board, result)
	mockCache.AssertExpectations(t)
	mockReader.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockReader := &MockFlightReader{}
	mockCache := &MockBoardCache{}
	service := NewFlightService(mockReader, mockCache)
	ctx := context.Background()
	board := testBoard()

	mockCache.On("GetBoard", ctx).Return(board, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, board, result)
	mockReader.AssertNotCalled(t, "Board", mock.Anything)
}

func TestFlightService_List_CacheError(t *testing.T) {
	mockReader := &MockFlightReader{}
	mockCache := &MockBoardCache{}
	service := NewFlightService(mockReader, mockCache)
	ctx := context.Background()
	board := testBoard()

	mockCache.On("GetBoard", ctx).Return(([]domain.FlightSummary)(nil), errors.New("cache error")).Once()
	mockReader.On("Board", ctx).Return(board, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, board, result)
	mockCache.AssertExpectations(t)
	mockReader.AssertExpectations(t)
}

func TestFlightService_List_RegistryError(t *testing.T) {
	mockReader := &MockFlightReader{}
	mockCache := &MockBoardCache{}
	service := NewFlightService(mockReader, mockCache)
	ctx := context.Background()

	mockCache.On("GetBoard", ctx).Return(([]domain.FlightSummary)(nil), nil).Once()
	mockReader.On("Board", ctx).Return([]domain.FlightSummary{}, context.Canceled).Once()

	result, err := service.List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	mockCache.AssertExpectations(t)
}

func TestFlightService_GetByNumber(t *testing.T) {
	mockReader := &MockFlightReader{}
	service := NewFlightService(mockReader, nil)
	ctx := context.Background()
	summary := &testBoard()[0]

	mockReader.On("FlightSummary", ctx, 123).Return(summary, nil).Once()
	mockReader.On("FlightSummary", ctx, 999).Return(nil, booking.ErrFlightNotFound).Once()

	result, err := service.GetByNumber(ctx, 123)
	assert.NoError(t, err)
	assert.Equal(t, summary, result)

	result, err = service.GetByNumber(ctx, 999)
	assert.ErrorIs(t, err, booking.ErrFlightNotFound)
	assert.Nil(t, result)

	mockReader.AssertExpectations(t)
}

func TestFlightService_NoCache_ReadsLiveRegistry(t *testing.T) {
	registry := booking.NewBookingService(booking.NewManager(nil), repository.NewPassengerRepository(), nil)
	service := NewFlightService(registry, nil)
	ctx := context.Background()

	board, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, 233, board[1].Number)

	require.NoError(t, registry.DeleteFlight(ctx, 233))

	board, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, board, 2)
}

// memBoardCache stands in for redis: it stores whatever the registry writes.
type memBoardCache struct {
	mu    sync.Mutex
	board []domain.FlightSummary
}

func (c *memBoardCache) GetBoard(ctx context.Context) ([]domain.FlightSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board, nil
}

func (c *memBoardCache) SetBoard(ctx context.Context, board []domain.FlightSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.board = board
	return nil
}

func passengerCount(board []domain.FlightSummary, number int) int {
	for _, f := range board {
		if f.Number == number {
			return f.PassengerCount
		}
	}
	return -1
}

func TestFlightService_List_CacheFollowsBookings(t *testing.T) {
	boardCache := &memBoardCache{}
	registry := booking.NewBookingService(
		booking.NewManager(nil),
		repository.NewPassengerRepository(),
		nil,
		booking.WithCache(boardCache),
	)
	service := NewFlightService(registry, boardCache)
	ctx := context.Background()

	board, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, passengerCount(board, 123))

	p, err := registry.RegisterPassenger(ctx, booking.RegisterPassengerInput{Name: "kenton", Age: 22})
	require.NoError(t, err)
	_, err = registry.BookFlight(ctx, p.ID, 123)
	require.NoError(t, err)

	board, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, passengerCount(board, 123))

	_, err = registry.CancelFlight(ctx, p.ID, 123)
	require.NoError(t, err)

	board, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, passengerCount(board, 123))
}

func TestFlightService_List_ConcurrentWithBookings(t *testing.T) {
	boardCache := &memBoardCache{}
	registry := booking.NewBookingService(
		booking.NewManager(nil),
		repository.NewPassengerRepository(),
		nil,
		booking.WithCache(boardCache),
	)
	service := NewFlightService(registry, boardCache)
	ctx := context.Background()

	const passengers = 20
	var wg sync.WaitGroup
	for i := 0; i < passengers; i++ {
		p, err := registry.RegisterPassenger(ctx, booking.RegisterPassengerInput{Name: "traveller", Age: 30})
		require.NoError(t, err)

		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = registry.BookFlight(ctx, p.ID, 233)
		}()
		go func() {
			defer wg.Done()
			_, _ = service.List(ctx)
		}()
	}
	wg.Wait()

	board, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, passengers, passengerCount(board, 233))
}
