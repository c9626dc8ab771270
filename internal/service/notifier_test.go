package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/service"
	"evaluation_service/pkg/logger"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.ContextWithLogger(context.Background(), logger.New(zap.New(core)))

	err := service.LogNotifier{}.FireLifecycleEvent(ctx, domain.LifecycleEvent{
		ID:           "ev-1",
		Name:         domain.EventEvaluationDue,
		EvaluationID: "eval-1",
		State:        domain.StateDue,
	})
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, domain.EventEvaluationDue, fields["event"])
	assert.Equal(t, "eval-1", fields["evaluation_id"])
}
