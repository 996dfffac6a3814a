package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka"
	mock_kafka "github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka/mock"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	writeFn  func(ctx context.Context, msgs ...kafkago.Message) error
	messages []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if f.writeFn != nil {
		if err := f.writeFn(ctx, msgs...); err != nil {
			return err
		}
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publish and mark sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "1", AggregateID: "a", EventType: "notification.requested", Topic: "hr.notification.v1", Payload: []byte(`{}`)},
			{ID: "2", AggregateID: "b", EventType: "notification.requested", Topic: "hr.notification.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "1").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, logger)

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.messages, 2)
		assert.Equal(t, "hr.notification.v1", writer.messages[0].Topic)
		assert.Equal(t, []byte("a"), writer.messages[0].Key)
	})

	t.Run("publish failure marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{writeFn: func(ctx context.Context, msgs ...kafkago.Message) error {
			return errors.New("broker down")
		}}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "1", Topic: "hr.notification.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "1", "broker down").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, logger)

		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, logger)

		assert.Error(t, err)
	})
}
