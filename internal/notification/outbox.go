package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/events"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutboxNotifier menulis permintaan notifikasi ke outbox; worker yang
// mempublikasikannya ke Kafka dan consumer yang mengirim email.
type OutboxNotifier struct {
	repo   kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewOutboxNotifier(repo kafka.OutboxRepository, logger ...*zap.Logger) *OutboxNotifier {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	return &OutboxNotifier{repo: repo, now: time.Now, logger: l}
}

func (n *OutboxNotifier) Notify(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.CarriesCredentials() {
		n.logger.Error("refusing to enqueue credential-bearing notification", zap.String("template", msg.Template))
		return ErrCredentialNotQueueable
	}

	payload, err := json.Marshal(events.NotificationRequestedEvent{
		EventType:  events.NotificationRequestedType,
		To:         msg.To,
		Template:   msg.Template,
		Data:       msg.Data,
		OccurredAt: n.now().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "notification",
		AggregateID:   uuid.NewString(),
		EventType:     events.NotificationRequestedType,
		Topic:         events.NotificationRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	if err := n.repo.Create(ctx, event); err != nil {
		n.logger.Error("enqueue notification failed",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
		return err
	}

	n.logger.Debug("notification enqueued",
		zap.String("outbox_id", event.ID),
		zap.String("template", msg.Template),
	)
	return nil
}
