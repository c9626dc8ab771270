package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"evaluation_service/internal/domain"
	"evaluation_service/pkg/retry"
)

// Writer is the part of *kafka.Writer the notifier uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers          []string
	Topic            string
	MaxRetries       int
	BaseDelay        time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
}

// Notifier publishes lifecycle events keyed by evaluation id so one
// evaluation's events stay ordered within a partition.
type Notifier struct {
	writer     Writer
	breaker    *retry.CircuitBreaker
	maxRetries int
	baseDelay  time.Duration
	now        func() time.Time
}

func NewWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

func NewNotifier(w Writer, cfg Config) *Notifier {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	threshold := cfg.FailureThreshold
	if threshold <= 0 {
		threshold = 5
	}
	reset := cfg.ResetTimeout
	if reset <= 0 {
		reset = 30 * time.Second
	}
	return &Notifier{
		writer:     w,
		breaker:    retry.NewCircuitBreaker(threshold, reset),
		maxRetries: maxRetries,
		baseDelay:  cfg.BaseDelay,
		now:        time.Now,
	}
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

func (n *Notifier) FireLifecycleEvent(ctx context.Context, event domain.LifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal lifecycle event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.EvaluationID),
		Value: data,
		Time:  n.now(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Name)},
		},
	}

	_, err = retry.WithCircuitBreaker(ctx, n.breaker, n.maxRetries, n.baseDelay, func() (struct{}, error) {
		return struct{}{}, n.writer.WriteMessages(ctx, message)
	})
	if err != nil {
		return fmt.Errorf("failed to send lifecycle event %s: %w", event.Name, err)
	}
	return nil
}

// DecodeEvent parses a message produced by FireLifecycleEvent.
func DecodeEvent(msg kafka.Message) (domain.LifecycleEvent, error) {
	var event domain.LifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal lifecycle event: %w", err)
	}
	return event, nil
}
