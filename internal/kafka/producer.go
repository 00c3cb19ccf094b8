package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	Type         string    `json:"type"`
	PassengerID  string    `json:"passenger_id"`
	Passenger    string    `json:"passenger"`
	FlightNumber int       `json:"flight_number"`
	AmountDue    int64     `json:"amount_due"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const defaultRetryBackoff = 500 * time.Millisecond

type Producer struct {
	brokers      []string
	writer       *kafka.Writer
	retryBackoff time.Duration
	logger       *zap.Logger
}

func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers:      brokers,
		writer:       writer,
		retryBackoff: defaultRetryBackoff,
		logger:       logger,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.logger.Debug("published to kafka", zap.String("topic", topic), zap.String("key", key))
	return nil
}

// PublishWithRetry calls Publish up to maxRetries times, backing off a little
// longer after each failure.
func (p *Producer) PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error {
	return retry(ctx, maxRetries, p.retryBackoff, func(attempt int, err error) {
		p.logger.Warn("publish attempt failed",
			zap.String("topic", topic),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}, func() error {
		return p.Publish(ctx, topic, key, payload)
	})
}

func retry(ctx context.Context, attempts int, backoff time.Duration, onFail func(attempt int, err error), fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		onFail(i+1, err)

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * backoff):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", attempts, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads its partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	p.logger.Info("connected to kafka", zap.Int("partitions", len(partitions)))
	return nil
}
