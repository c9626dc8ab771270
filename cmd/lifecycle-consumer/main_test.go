package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evaluation_service/pkg/logger"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	fetchErrs []error
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafka.Message{}, err
	}
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestConsume_CommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel:    cancel,
		fetchErrs: []error{errors.New("broker unavailable")},
		messages: []kafka.Message{
			{Offset: 1, Value: []byte(`{"name":"evaluation.state.due","evaluation_id":"eval-1","state":"DUE"}`)},
			{Offset: 2, Value: []byte("not-json")},
		},
	}

	done := make(chan struct{})
	go func() {
		consume(ctx, reader, logger.Nop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestProcessMessage(t *testing.T) {
	log := logger.Nop()
	ctx := context.Background()

	t.Run("valid event", func(t *testing.T) {
		processMessage(ctx, log, kafka.Message{
			Topic: "evaluation-lifecycle",
			Value: []byte(`{"id":"ev-1","name":"evaluation.state.start","evaluation_id":"eval-1"}`),
		})
	})

	t.Run("empty payload", func(t *testing.T) {
		processMessage(ctx, log, kafka.Message{Topic: "evaluation-lifecycle", Value: []byte{}})
	})
}

func TestTruncateBytes(t *testing.T) {
	assert.Equal(t, []byte("hello"), truncateBytes([]byte("hello"), 256))
	assert.Nil(t, truncateBytes(nil, 256))

	long := make([]byte, 512)
	require.Len(t, truncateBytes(long, 256), 256)
}
