// Package demo walks a freshly seeded registry through booking, cancelling
// and deleting flights, printing the registry after each step.
package demo

import (
	"fmt"
	"io"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"go.uber.org/zap"
)

type runner struct {
	w       io.Writer
	manager *booking.Manager
	err     error
}

func (r *runner) section(title string) {
	r.printf("===%s===\n", title)
}

func (r *runner) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *runner) printFlights() {
	if r.err != nil {
		return
	}
	r.err = r.manager.PrintAllFlights(r.w)
}

func (r *runner) do(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *runner) flight(number int) *domain.Flight {
	f, ok := r.manager.Flight(number)
	if !ok && r.err == nil {
		r.err = fmt.Errorf("demo flight %d: %w", number, booking.ErrFlightNotFound)
	}
	return f
}

// Run executes the scenario against a new Manager and returns it so callers
// can inspect the final state.
func Run(w io.Writer, logger *zap.Logger) (*booking.Manager, error) {
	r := &runner{w: w, manager: booking.NewManager(logger)}

	r.section("Instantiate passenger with luggage")
	laptop := domain.NewLuggage("laptop", "")
	kenton := domain.NewPassenger("kenton", 22, domain.WithLuggage(laptop))
	r.printf("%s\n", kenton)

	r.section("print all flights available")
	r.printFlights()

	r.section("book flight 123 for kenton")
	r.do(r.manager.BookFlight(kenton, r.flight(123)))
	r.printf("%s needs to pay $%d\n", kenton.Name, kenton.AmountDue())

	r.section("see that the flights have been updated (123 has one passenger now)")
	r.printFlights()

	r.section("kenton's flights have also been updated")
	r.printf("%s\n", kenton.CurrentFlight())

	r.section("make a new plane and create a new flight")
	newFlight := domain.NewFlight(555, "HND", "MCI", "2/16/2019 10:00PM", domain.NewPlane("new model"), 750)
	r.do(r.manager.CreateFlights(newFlight))
	r.printFlights()

	r.section("book that new flight for kenton and show all the flights again")
	r.do(r.manager.BookFlight(kenton, r.flight(555)))
	r.printf("%s needs to pay $%d\n", kenton.Name, kenton.AmountDue())
	r.printFlights()

	r.section("cancel the 123 flight for kenton and show how the flights update")
	r.do(r.manager.CancelFlight(kenton, r.flight(123)))
	r.printFlights()

	r.section("delete the flight 123 and print the flights again")
	r.manager.DeleteFlight(r.flight(123))
	r.printFlights()

	r.section("kenton's flight history")
	if r.err == nil {
		r.err = kenton.PrintFlightHistory(w)
	}

	r.section("a bare person and a bare location")
	r.printf("%s\n", domain.Person{Name: "Test", Age: 101})
	r.printf("%s\n", domain.Position{Location: "somewhere"}.Where())

	return r.manager, r.err
}
