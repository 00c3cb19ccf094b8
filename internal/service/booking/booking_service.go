package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/Domenick1991/flightregistry/internal/kafka"
	"github.com/Domenick1991/flightregistry/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrPassengerNotFound = repository.ErrPassengerNotFound
	ErrValidation        = errors.New("validation failed")
)

type BookingUseCase interface {
	RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error)
	BookFlight(ctx context.Context, passengerID uuid.UUID, flightNumber int) (*BookingReceipt, error)
	CancelFlight(ctx context.Context, passengerID uuid.UUID, flightNumber int) (*BookingReceipt, error)
	ListPassengers(ctx context.Context) ([]*domain.Passenger, error)
	FlightHistory(ctx context.Context, passengerID uuid.UUID) ([]domain.FlightSummary, error)
	CreateFlight(ctx context.Context, input CreateFlightInput) (*domain.FlightSummary, error)
	DeleteFlight(ctx context.Context, flightNumber int) error
}

// Cache receives the flight board every time it changes. It is only ever
// written while the registry lock is held, so it never goes backwards.
type Cache interface {
	SetBoard(ctx context.Context, board []domain.FlightSummary) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// RetryProducer is a Producer that can retry a failed publish itself.
type RetryProducer interface {
	Producer
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// BookingService puts a context-aware, concurrency-safe face on Manager and
// keeps the directory of passengers it has registered.
type BookingService struct {
	mu                 sync.Mutex
	manager            *Manager
	passengers         repository.PassengerRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	publishRetries     int
	logger             *zap.Logger
}

type RegisterPassengerInput struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Location string   `json:"location"`
	Luggage  []string `json:"luggage"`
}

type CreateFlightInput struct {
	Number        int    `json:"number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	PlaneModel    string `json:"plane_model"`
	BasePrice     int64  `json:"base_price"`
}

type BookingReceipt struct {
	PassengerID   uuid.UUID `json:"passenger_id"`
	Passenger     string    `json:"passenger"`
	FlightNumber  int       `json:"flight_number"`
	CurrentFlight *int      `json:"current_flight"`
	AmountDue     int64     `json:"amount_due"`
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishRetries makes every publish try up to n times when the producer
// supports retries.
func WithPublishRetries(n int) BookingServiceOption {
	return func(s *BookingService) {
		s.publishRetries = n
	}
}

func NewBookingService(
	manager *Manager,
	passengers repository.PassengerRepository,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	service := &BookingService{
		manager:    manager,
		passengers: passengers,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	opts := []domain.PassengerOption{domain.WithLocation(input.Location)}
	for _, label := range input.Luggage {
		opts = append(opts, domain.WithLuggage(domain.NewLuggage(label, "")))
	}
	passenger := domain.NewPassenger(input.Name, input.Age, opts...)

	if err := s.passengers.Save(ctx, passenger); err != nil {
		return nil, fmt.Errorf("save passenger: %w", err)
	}
	return passenger, nil
}

func (s *BookingService) BookFlight(ctx context.Context, passengerID uuid.UUID, flightNumber int) (*BookingReceipt, error) {
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	flight, ok := s.manager.Flight(flightNumber)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("flight %d: %w", flightNumber, ErrFlightNotFound)
	}
	if err := s.manager.BookFlight(passenger, flight); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	receipt := newReceipt(passenger, flight)
	s.storeBoard(ctx, s.manager.Board())
	s.mu.Unlock()

	s.publish(ctx, kafka.EventBookingCreated, receipt)
	return receipt, nil
}

func (s *BookingService) CancelFlight(ctx context.Context, passengerID uuid.UUID, flightNumber int) (*BookingReceipt, error) {
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	flight, ok := s.manager.Flight(flightNumber)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("flight %d: %w", flightNumber, ErrFlightNotFound)
	}
	if err := s.manager.CancelFlight(passenger, flight); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	receipt := newReceipt(passenger, flight)
	s.storeBoard(ctx, s.manager.Board())
	s.mu.Unlock()

	s.publish(ctx, kafka.EventBookingCancelled, receipt)
	return receipt, nil
}

// ListPassengers returns every registered passenger in registration order.
func (s *BookingService) ListPassengers(ctx context.Context) ([]*domain.Passenger, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	return passengers, nil
}

func (s *BookingService) FlightHistory(ctx context.Context, passengerID uuid.UUID) ([]domain.FlightSummary, error) {
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	history := passenger.FlightHistory()
	out := make([]domain.FlightSummary, 0, len(history))
	for _, f := range history {
		out = append(out, f.Summary())
	}
	return out, nil
}

func (s *BookingService) CreateFlight(ctx context.Context, input CreateFlightInput) (*domain.FlightSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	flight := domain.NewFlight(
		input.Number,
		input.Origin,
		input.Destination,
		input.DepartureTime,
		domain.NewPlane(input.PlaneModel),
		input.BasePrice,
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.manager.CreateFlights(flight); err != nil {
		return nil, err
	}
	s.storeBoard(ctx, s.manager.Board())

	summary := flight.Summary()
	return &summary, nil
}

// DeleteFlight removes the flight registered under flightNumber. An unknown
// number is not an error.
func (s *BookingService) DeleteFlight(ctx context.Context, flightNumber int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if flight, ok := s.manager.Flight(flightNumber); ok && s.manager.DeleteFlight(flight) {
		s.storeBoard(ctx, s.manager.Board())
	}
	return nil
}

// Board returns a snapshot of every registered flight and refreshes the
// cache with it.
func (s *BookingService) Board(ctx context.Context) ([]domain.FlightSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	board := s.manager.Board()
	s.storeBoard(ctx, board)
	return board, nil
}

func (s *BookingService) FlightSummary(ctx context.Context, flightNumber int) (*domain.FlightSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	flight, ok := s.manager.Flight(flightNumber)
	if !ok {
		return nil, fmt.Errorf("flight %d: %w", flightNumber, ErrFlightNotFound)
	}
	summary := flight.Summary()
	return &summary, nil
}

// storeBoard must be called with s.mu held.
func (s *BookingService) storeBoard(ctx context.Context, board []domain.FlightSummary) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetBoard(ctx, board); err != nil {
		s.logger.Warn("failed to update flight board cache", zap.Error(err))
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, receipt *BookingReceipt) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		PassengerID:  receipt.PassengerID.String(),
		Passenger:    receipt.Passenger,
		FlightNumber: receipt.FlightNumber,
		AmountDue:    receipt.AmountDue,
		OccurredAt:   time.Now().UTC(),
	}
	key := receipt.PassengerID.String()

	topics := []string{s.bookingTopic}
	if s.notificationsTopic != "" {
		topics = append(topics, s.notificationsTopic)
	}
	for _, topic := range topics {
		if err := s.send(ctx, topic, key, event); err != nil {
			s.logger.Warn("failed to publish booking event",
				zap.String("type", eventType),
				zap.String("topic", topic),
				zap.Error(err),
			)
		}
	}
}

func (s *BookingService) send(ctx context.Context, topic, key string, event kafka.BookingEvent) error {
	if rp, ok := s.producer.(RetryProducer); ok && s.publishRetries > 1 {
		return rp.PublishWithRetry(ctx, topic, key, event, s.publishRetries)
	}
	return s.producer.Publish(ctx, topic, key, event)
}

func newReceipt(p *domain.Passenger, f *domain.Flight) *BookingReceipt {
	receipt := &BookingReceipt{
		PassengerID:  p.ID,
		Passenger:    p.Name,
		FlightNumber: f.Number,
		AmountDue:    p.AmountDue(),
	}
	if current := p.CurrentFlight(); current != nil {
		n := current.Number
		receipt.CurrentFlight = &n
	}
	return receipt
}

var (
	_ BookingUseCase = (*BookingService)(nil)
	_ RetryProducer  = (*kafka.Producer)(nil)
)
