package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/lifecycle"
	"evaluation_service/pkg/logger"
)

var tracer = otel.Tracer("evaluation_service/internal/service")

const defaultSweepBatch = 100

// sweepStates are the cached states that can still move forward.
var sweepStates = []domain.State{
	domain.StateNew,
	domain.StateActive,
	domain.StateDue,
	domain.StateClosed,
}

type LifecycleService struct {
	store    Store
	notifier Notifier
	locker   Locker
	clock    lifecycle.Clock
}

func NewLifecycleService(store Store, notifier Notifier, locker Locker, clock lifecycle.Clock) *LifecycleService {
	return &LifecycleService{
		store:    store,
		notifier: notifier,
		locker:   locker,
		clock:    clock,
	}
}

// RefreshState resolves the current state of an evaluation. With persist set
// a forward change is written back and announced with one lifecycle event.
// The state is saved first and the event fires only after the write
// succeeded; a failed delivery is logged and does not undo the write.
func (s *LifecycleService) RefreshState(ctx context.Context, evaluationID string, persist bool) (domain.State, error) {
	ctx, span := tracer.Start(ctx, "LifecycleService.RefreshState")
	defer span.End()
	span.SetAttributes(
		attribute.String("evaluation.id", evaluationID),
		attribute.Bool("persist", persist),
	)

	if persist {
		unlock, err := s.locker.Lock(ctx, evaluationID)
		if err != nil {
			return domain.StateUnknown, fmt.Errorf("lock evaluation %s: %w", evaluationID, err)
		}
		defer unlock()
	}

	eval, err := s.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return domain.StateUnknown, err
	}
	return s.reconcile(ctx, eval, persist)
}

func (s *LifecycleService) reconcile(ctx context.Context, eval *domain.Evaluation, persist bool) (domain.State, error) {
	log := logger.FromContext(ctx)
	now := s.clock.Now()
	state := lifecycle.Resolve(eval, now)

	if state == domain.StateUnknown {
		log.Warn(ctx, "evaluation dates are incoherent, state unknown",
			zap.String("evaluation_id", eval.ID),
			zap.String("title", eval.Title),
		)
		return state, nil
	}
	if state == eval.State || !persist || !eval.HasIdentity() {
		return state, nil
	}
	if state.Before(eval.State) {
		log.Warn(ctx, "resolved state is behind stored state, not persisting",
			zap.String("evaluation_id", eval.ID),
			zap.String("stored", string(eval.State)),
			zap.String("resolved", string(state)),
		)
		return state, nil
	}

	if err := s.store.SaveEvaluationState(ctx, eval.ID, state, now); err != nil {
		return domain.StateUnknown, fmt.Errorf("save state of evaluation %s: %w", eval.ID, err)
	}
	log.Info(ctx, "evaluation state changed",
		zap.String("evaluation_id", eval.ID),
		zap.String("from", string(eval.State)),
		zap.String("to", string(state)),
	)
	previous := eval.State
	eval.State = state

	if name, ok := domain.EventForState(state); ok {
		fireEvent(ctx, s.notifier, domain.LifecycleEvent{
			Name:         name,
			EvaluationID: eval.ID,
			State:        state,
			OccurredAt:   now,
		}, zap.String("previous_state", string(previous)))
	}
	return state, nil
}

// Sweep refreshes every evaluation whose stored state can still advance and
// returns how many changed.
func (s *LifecycleService) Sweep(ctx context.Context, batchSize int) (int, error) {
	ctx, span := tracer.Start(ctx, "LifecycleService.Sweep")
	defer span.End()

	if batchSize <= 0 {
		batchSize = defaultSweepBatch
	}

	changed := 0
	afterID := ""
	for {
		batch, err := s.store.ListEvaluationsByState(ctx, sweepStates, afterID, batchSize)
		if err != nil {
			return changed, fmt.Errorf("list evaluations: %w", err)
		}
		for _, eval := range batch {
			if err := ctx.Err(); err != nil {
				return changed, err
			}
			state, err := s.RefreshState(ctx, eval.ID, true)
			if err != nil {
				logger.FromContext(ctx).Error(ctx, "failed to refresh evaluation state",
					zap.String("evaluation_id", eval.ID), zap.Error(err))
				continue
			}
			if state != eval.State && state != domain.StateUnknown && !state.Before(eval.State) {
				changed++
			}
		}
		if len(batch) < batchSize {
			break
		}
		afterID = batch[len(batch)-1].ID
	}
	span.SetAttributes(attribute.Int("evaluations.changed", changed))
	return changed, nil
}

func fireEvent(ctx context.Context, notifier Notifier, event domain.LifecycleEvent, fields ...zap.Field) {
	if event.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		event.ID = id.String()
	}
	if err := notifier.FireLifecycleEvent(ctx, event); err != nil {
		fields = append(fields,
			zap.String("event", event.Name),
			zap.String("evaluation_id", event.EvaluationID),
			zap.Error(err),
		)
		logger.FromContext(ctx).Error(ctx, "failed to fire lifecycle event", fields...)
	}
}
