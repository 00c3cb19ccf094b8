package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFlight() *Flight {
	return NewFlight(123, "MCI", "LAX", "2/13/19 3:00PM", NewPlane("Boeing 747"), 400)
}

func TestFlight_AssignPassenger_CountsDistinctPassengers(t *testing.T) {
	flight := newTestFlight()

	for i := 1; i <= 5; i++ {
		flight.AssignPassenger(NewPassenger("p", 20))
		assert.Equal(t, i, flight.PassengerCount())
	}
}

func TestFlight_AssignPassenger_AllowsDuplicates(t *testing.T) {
	flight := newTestFlight()
	p := NewPassenger("kenton", 22)

	flight.AssignPassenger(p)
	flight.AssignPassenger(p)

	assert.Equal(t, 2, flight.PassengerCount())

	assert.True(t, flight.RemovePassenger(p))
	assert.Equal(t, 1, flight.PassengerCount())
	assert.True(t, flight.HasPassenger(p))
}

func TestFlight_RemovePassenger(t *testing.T) {
	flight := newTestFlight()
	a := NewPassenger("a", 30)
	b := NewPassenger("b", 31)
	c := NewPassenger("c", 32)
	flight.AssignPassenger(a)
	flight.AssignPassenger(b)
	flight.AssignPassenger(c)

	assert.True(t, flight.RemovePassenger(b))
	assert.Equal(t, 2, flight.PassengerCount())
	assert.False(t, flight.HasPassenger(b))
	assert.True(t, flight.HasPassenger(a))
	assert.True(t, flight.HasPassenger(c))

	assert.True(t, flight.RemovePassenger(a))
	assert.Equal(t, 1, flight.PassengerCount())
}

func TestFlight_RemovePassenger_Absent(t *testing.T) {
	flight := newTestFlight()
	flight.AssignPassenger(NewPassenger("a", 30))

	removed := flight.RemovePassenger(NewPassenger("stranger", 40))

	assert.False(t, removed)
	assert.Equal(t, 1, flight.PassengerCount())
}

func TestFlight_String(t *testing.T) {
	flight := newTestFlight()
	flight.AssignPassenger(NewPassenger("a", 30))

	assert.Equal(t,
		"flight 123 on a Boeing 747 from MCI to LAX at 2/13/19 3:00PM.\n 1 passengers booked so far. Base price: $400",
		flight.String())
}

func TestFlight_Summary(t *testing.T) {
	flight := newTestFlight()
	flight.AssignPassenger(NewPassenger("a", 30))

	assert.Equal(t, FlightSummary{
		Number:         123,
		PlaneModel:     "Boeing 747",
		Origin:         "MCI",
		Destination:    "LAX",
		DepartureTime:  "2/13/19 3:00PM",
		PassengerCount: 1,
		BasePrice:      400,
	}, flight.Summary())
}

func TestFlight_SharedPlane(t *testing.T) {
	plane := NewPlane("Cessna")
	first := NewFlight(1, "A", "B", "now", plane, 10)
	second := NewFlight(2, "B", "A", "later", plane, 10)

	assert.Same(t, first.Plane, second.Plane)
	assert.Equal(t, "Cessna", second.Summary().PlaneModel)
}
