package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/events"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader dipenuhi oleh *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeNotificationRequested(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		handleNotificationMessage(ctx, reader, notifier, msg, log)
	}
}

func handleNotificationMessage(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.NotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	err := notifier.Notify(ctx, notification.Message{
		To:       event.To,
		Template: event.Template,
		Data:     event.Data,
	})
	if err != nil {
		if errors.Is(err, notification.ErrUnknownTemplate) || errors.Is(err, notification.ErrRecipientRequired) {
			log.Warn("notification event is not deliverable, skipping",
				zap.String("template", event.Template),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			return
		}

		// tidak di-commit supaya dikirim ulang
		log.Error("send notification failed",
			zap.String("template", event.Template),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
		return
	}

	log.Info("notification delivered", zap.String("template", event.Template))
}
