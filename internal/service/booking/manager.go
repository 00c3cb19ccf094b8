package booking

import (
	"errors"
	"fmt"
	"io"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrInvalidEntity = errors.New("invalid entity")
	ErrAlreadyBooked = errors.New("passenger already booked on flight")
)

// Manager owns the flight registry and is the only thing that should pair
// passengers with flights. It is not safe for concurrent use.
type Manager struct {
	flights map[int]*domain.Flight
	order   []int
	logger  *zap.Logger
}

type ManagerOption func(*managerOptions)

type managerOptions struct {
	seed []*domain.Flight
}

// WithSeed replaces the default dataset the manager starts with.
func WithSeed(flights ...*domain.Flight) ManagerOption {
	return func(o *managerOptions) {
		o.seed = flights
	}
}

func WithoutSeed() ManagerOption {
	return func(o *managerOptions) {
		o.seed = nil
	}
}

// DefaultFlights is the dataset a new Manager is seeded with.
func DefaultFlights() []*domain.Flight {
	boeing747 := domain.NewPlane("Boeing 747")
	cessna := domain.NewPlane("Cessna")
	boeing787 := domain.NewPlane("Boeing 787")

	return []*domain.Flight{
		domain.NewFlight(123, "MCI", "LAX", "2/13/19 3:00PM", boeing747, 400),
		domain.NewFlight(233, "MCI", "JFK", "2/14/19 7:00AM", cessna, 120),
		domain.NewFlight(314, "LAX", "MCI", "2/14/19 9:30PM", boeing787, 1000),
	}
}

func NewManager(logger *zap.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := managerOptions{seed: DefaultFlights()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		flights: make(map[int]*domain.Flight),
		logger:  logger,
	}
	for _, f := range o.seed {
		if f != nil {
			m.put(f)
		}
	}
	return m
}

// BookFlight puts p on f and f on p. Both entities are checked before
// anything is changed, so a rejected call leaves them untouched. Booking a
// passenger onto a flight they already hold a seat on fails with
// ErrAlreadyBooked.
func (m *Manager) BookFlight(p *domain.Passenger, f *domain.Flight) error {
	if err := validate(p, f); err != nil {
		return err
	}
	if f.HasPassenger(p) {
		return fmt.Errorf("%s on flight %d: %w", p.Name, f.Number, ErrAlreadyBooked)
	}

	f.AssignPassenger(p)
	due := p.AssignFlight(f)

	m.logger.Info(fmt.Sprintf("%s needs to pay $%d", p.Name, due),
		zap.String("passenger_id", p.ID.String()),
		zap.Int("flight_number", f.Number),
		zap.Int64("amount_due", due),
	)
	return nil
}

// CancelFlight takes p off f. The passenger's own booking is only cleared
// when f is the flight they are currently on; history is left alone.
func (m *Manager) CancelFlight(p *domain.Passenger, f *domain.Flight) error {
	if err := validate(p, f); err != nil {
		return err
	}

	if !f.RemovePassenger(p) {
		m.logger.Warn("This passenger isn't on this flight.",
			zap.String("passenger_id", p.ID.String()),
			zap.Int("flight_number", f.Number),
		)
	}
	if p.CurrentFlight() == f {
		p.CancelFlight()
	}
	return nil
}

// DeleteFlight removes f when it is the flight registered under its number.
// Passengers keep their references to it.
func (m *Manager) DeleteFlight(f *domain.Flight) bool {
	if f == nil {
		return false
	}
	registered, ok := m.flights[f.Number]
	if !ok || registered != f {
		return false
	}

	delete(m.flights, f.Number)
	for i, n := range m.order {
		if n == f.Number {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// CreateFlights registers flights by number. A later flight with the same
// number silently replaces the earlier one.
func (m *Manager) CreateFlights(flights ...*domain.Flight) error {
	for i, f := range flights {
		if f == nil {
			return fmt.Errorf("flight #%d is nil: %w", i, ErrInvalidEntity)
		}
	}
	for _, f := range flights {
		m.put(f)
	}
	return nil
}

func (m *Manager) PrintAllFlights(w io.Writer) error {
	for _, f := range m.Flights() {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) Flight(number int) (*domain.Flight, bool) {
	f, ok := m.flights[number]
	return f, ok
}

// Flights returns the registered flights in registration order.
func (m *Manager) Flights() []*domain.Flight {
	out := make([]*domain.Flight, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, m.flights[n])
	}
	return out
}

func (m *Manager) Board() []domain.FlightSummary {
	out := make([]domain.FlightSummary, 0, len(m.order))
	for _, f := range m.Flights() {
		out = append(out, f.Summary())
	}
	return out
}

func (m *Manager) put(f *domain.Flight) {
	if _, exists := m.flights[f.Number]; !exists {
		m.order = append(m.order, f.Number)
	}
	m.flights[f.Number] = f
}

func validate(p *domain.Passenger, f *domain.Flight) error {
	if !p.Valid() {
		return fmt.Errorf("passenger: %w", ErrInvalidEntity)
	}
	if f == nil {
		return fmt.Errorf("flight: %w", ErrInvalidEntity)
	}
	return nil
}
