package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"evaluation_service/pkg/logger"
)

type Sweeper interface {
	Sweep(ctx context.Context, batchSize int) (int, error)
}

// SweepWorker periodically persists state changes that happened because
// time passed, so lifecycle events fire without anyone reading the
// evaluation.
type SweepWorker struct {
	sweeper   Sweeper
	logger    *logger.Logger
	interval  time.Duration
	batchSize int
}

func NewSweepWorker(sweeper Sweeper, log *logger.Logger, interval time.Duration, batchSize int) *SweepWorker {
	return &SweepWorker{
		sweeper:   sweeper,
		logger:    log,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (w *SweepWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info(ctx, "sweep worker disabled")
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "sweep worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *SweepWorker) runOnce(ctx context.Context) {
	start := time.Now()
	ctx = logger.ContextWithLogger(ctx, w.logger)

	changed, err := w.sweeper.Sweep(ctx, w.batchSize)
	if err != nil {
		w.logger.Error(ctx, "state sweep failed", zap.Int("changed", changed), zap.Error(err))
		return
	}
	if changed > 0 {
		w.logger.Info(ctx, "state sweep finished",
			zap.Int("changed", changed),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
