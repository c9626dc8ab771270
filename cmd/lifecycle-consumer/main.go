package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"evaluation_service/config"
	evkafka "evaluation_service/pkg/kafka"
	"evaluation_service/pkg/logger"
)

const maxLoggedBytes = 256

// Reader is the part of *kafka.Reader the consumer uses.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Build(cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if !cfg.Kafka.Enabled() {
		log.Fatal(ctx, "kafka brokers are not configured")
	}

	log.Info(ctx, "starting lifecycle consumer",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.LifecycleTopic),
		zap.String("group_id", cfg.Kafka.ConsumerGroup),
	)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.ConsumerGroup,
		Topic:   cfg.Kafka.LifecycleTopic,
	})
	defer func() { _ = reader.Close() }()

	consume(ctx, reader, log)
	log.Info(ctx, "consumer shutting down")
}

// consume reads until ctx is cancelled. Messages that fail to decode are
// committed anyway so a poison message does not block the partition.
func consume(ctx context.Context, reader Reader, log *logger.Logger) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			log.Error(ctx, "failed to fetch message", zap.Error(err))
			continue
		}

		processMessage(ctx, log, msg)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error(ctx, "failed to commit message", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func processMessage(ctx context.Context, log *logger.Logger, msg kafka.Message) {
	event, err := evkafka.DecodeEvent(msg)
	if err != nil {
		log.Warn(ctx, "failed to decode lifecycle event",
			zap.String("topic", msg.Topic),
			zap.ByteString("value", truncateBytes(msg.Value, maxLoggedBytes)),
			zap.Error(err),
		)
		return
	}
	log.Info(ctx, "lifecycle event received",
		zap.String("event", event.Name),
		zap.String("evaluation_id", event.EvaluationID),
		zap.String("group_id", event.GroupID),
		zap.String("state", string(event.State)),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	)
}

func truncateBytes(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
