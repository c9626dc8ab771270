package service

import (
	"context"

	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/pkg/logger"
)

// LogNotifier writes lifecycle events to the request logger instead of a
// broker. Used when no Kafka brokers are configured.
type LogNotifier struct{}

func (LogNotifier) FireLifecycleEvent(ctx context.Context, event domain.LifecycleEvent) error {
	logger.FromContext(ctx).Info(ctx, "lifecycle event",
		zap.String("event", event.Name),
		zap.String("event_id", event.ID),
		zap.String("evaluation_id", event.EvaluationID),
		zap.String("group_id", event.GroupID),
		zap.String("state", string(event.State)),
	)
	return nil
}
