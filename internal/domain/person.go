package domain

import "fmt"

// DefaultLocation is where luggage and passengers start out.
const DefaultLocation = "at home"

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s is %d years old", p.Name, p.Age)
}

// Locatable is anything that can say where it currently is.
type Locatable interface {
	Where() string
}

type Position struct {
	Location string
}

func (p Position) Where() string {
	return p.Location
}

func positionAt(location string) Position {
	if location == "" {
		location = DefaultLocation
	}
	return Position{Location: location}
}

type Luggage struct {
	Label string
	Position
}

// NewLuggage creates a bag; an empty location means DefaultLocation.
func NewLuggage(label, location string) *Luggage {
	return &Luggage{Label: label, Position: positionAt(location)}
}

var (
	_ Locatable = Luggage{}
	_ Locatable = (*Passenger)(nil)
)
