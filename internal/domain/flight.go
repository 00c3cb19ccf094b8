package domain

import "fmt"

type Plane struct {
	Model string
}

func NewPlane(model string) *Plane {
	return &Plane{Model: model}
}

func (p *Plane) String() string {
	if p == nil {
		return ""
	}
	return p.Model
}

// Flight is a bookable route. The passengers on it are private to the flight;
// outside readers only get counts and membership checks.
type Flight struct {
	Number        int
	Origin        string
	Destination   string
	DepartureTime string
	Plane         *Plane
	BasePrice     int64

	passengers []*Passenger
}

func NewFlight(number int, origin, destination, departureTime string, plane *Plane, basePrice int64) *Flight {
	return &Flight{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
		Plane:         plane,
		BasePrice:     basePrice,
	}
}

// AssignPassenger adds p without checking for duplicates.
// Bookings should go through booking.Manager, which keeps both sides paired.
func (f *Flight) AssignPassenger(p *Passenger) {
	f.passengers = append(f.passengers, p)
}

// RemovePassenger drops one occurrence of p and reports whether p was on the flight.
func (f *Flight) RemovePassenger(p *Passenger) bool {
	for i, cur := range f.passengers {
		if cur == p {
			f.passengers = append(f.passengers[:i], f.passengers[i+1:]...)
			return true
		}
	}
	return false
}

func (f *Flight) HasPassenger(p *Passenger) bool {
	for _, cur := range f.passengers {
		if cur == p {
			return true
		}
	}
	return false
}

func (f *Flight) PassengerCount() int {
	return len(f.passengers)
}

func (f *Flight) String() string {
	return fmt.Sprintf("flight %d on a %s from %s to %s at %s.\n %d passengers booked so far. Base price: $%d",
		f.Number, f.Plane, f.Origin, f.Destination, f.DepartureTime, f.PassengerCount(), f.BasePrice)
}

// FlightSummary is a point-in-time copy of a flight, safe to hand out to
// readers, caches and events.
type FlightSummary struct {
	Number         int    `json:"number"`
	PlaneModel     string `json:"plane_model"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departure_time"`
	PassengerCount int    `json:"passenger_count"`
	BasePrice      int64  `json:"base_price"`
}

func (f *Flight) Summary() FlightSummary {
	return FlightSummary{
		Number:         f.Number,
		PlaneModel:     f.Plane.String(),
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime,
		PassengerCount: f.PassengerCount(),
		BasePrice:      f.BasePrice,
	}
}
