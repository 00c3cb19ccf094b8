package domain

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// LuggageFee is the flat surcharge per bag added to a flight's base price.
const LuggageFee int64 = 30

type Passenger struct {
	ID uuid.UUID
	Person
	Position

	luggage       []*Luggage
	currentFlight *Flight
	flightHistory []*Flight
	amountDue     int64
}

type PassengerOption func(*Passenger)

func WithLocation(location string) PassengerOption {
	return func(p *Passenger) {
		p.Position = positionAt(location)
	}
}

func WithLuggage(items ...*Luggage) PassengerOption {
	return func(p *Passenger) {
		p.luggage = append(p.luggage, items...)
	}
}

func NewPassenger(name string, age int, opts ...PassengerOption) *Passenger {
	p := &Passenger{
		ID:       uuid.New(),
		Person:   Person{Name: name, Age: age},
		Position: positionAt(""),
		luggage:  make([]*Luggage, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Valid reports whether p was built by NewPassenger.
func (p *Passenger) Valid() bool {
	return p != nil && p.ID != uuid.Nil
}

func (p *Passenger) AddLuggage(l *Luggage) {
	p.luggage = append(p.luggage, l)
}

func (p *Passenger) Luggage() []*Luggage {
	out := make([]*Luggage, len(p.luggage))
	copy(out, p.luggage)
	return out
}

func (p *Passenger) LuggageCount() int {
	return len(p.luggage)
}

// CurrentFlight returns nil when the passenger is not booked.
func (p *Passenger) CurrentFlight() *Flight {
	return p.currentFlight
}

func (p *Passenger) FlightHistory() []*Flight {
	out := make([]*Flight, len(p.flightHistory))
	copy(out, p.flightHistory)
	return out
}

func (p *Passenger) AmountDue() int64 {
	return p.amountDue
}

// AssignFlight makes f the current flight, prices it and records it in the
// history. It returns the amount due.
func (p *Passenger) AssignFlight(f *Flight) int64 {
	p.currentFlight = f
	p.amountDue = f.BasePrice + LuggageFee*int64(len(p.luggage))
	p.flightHistory = append(p.flightHistory, f)
	return p.amountDue
}

// CancelFlight clears the current booking. Luggage and history are kept.
func (p *Passenger) CancelFlight() {
	p.currentFlight = nil
	p.amountDue = 0
}

func (p *Passenger) PrintFlightHistory(w io.Writer) error {
	for _, f := range p.flightHistory {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func (p *Passenger) String() string {
	return p.Person.String()
}
