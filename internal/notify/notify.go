package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/flightregistry/internal/kafka"
)

// Sender turns booking events into human-readable notices.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, Message(event))
	return err
}

func Message(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("%s is booked on flight %d and needs to pay $%d", event.Passenger, event.FlightNumber, event.AmountDue)
	case kafka.EventBookingCancelled:
		return fmt.Sprintf("%s cancelled flight %d, amount due is now $%d", event.Passenger, event.FlightNumber, event.AmountDue)
	default:
		return fmt.Sprintf("%s: %s for flight %d", event.Type, event.Passenger, event.FlightNumber)
	}
}
