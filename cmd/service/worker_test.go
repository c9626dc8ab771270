package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"evaluation_service/pkg/logger"
)

type countingSweeper struct {
	calls atomic.Int32
	batch atomic.Int32
	err   error
}

func (s *countingSweeper) Sweep(_ context.Context, batchSize int) (int, error) {
	s.calls.Add(1)
	s.batch.Store(int32(batchSize))
	return 1, s.err
}

func TestSweepWorker_RunsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	w := NewSweepWorker(sweeper, logger.Nop(), 5*time.Millisecond, 25)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, int32(25), sweeper.batch.Load())
}

func TestSweepWorker_Disabled(t *testing.T) {
	sweeper := &countingSweeper{}
	w := NewSweepWorker(sweeper, logger.Nop(), 0, 25)

	w.Start(context.Background())
	assert.Zero(t, sweeper.calls.Load())
}

func TestSweepWorker_ErrorDoesNotStopWorker(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("db down")}
	w := NewSweepWorker(sweeper, logger.Nop(), time.Hour, 10)

	w.runOnce(context.Background())
	w.runOnce(context.Background())
	assert.Equal(t, int32(2), sweeper.calls.Load())
}
