package notification

import (
	"context"

	"go.uber.org/zap"
)

// DirectNotifier merender template dan mengirim langsung lewat Mailer.
type DirectNotifier struct {
	mailer Mailer
	logger *zap.Logger
}

func NewDirectNotifier(mailer Mailer, logger ...*zap.Logger) *DirectNotifier {
	l := zap.L().Named("notification.direct")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.direct")
	}
	return &DirectNotifier{mailer: mailer, logger: l}
}

func (n *DirectNotifier) Notify(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	subject, body, err := Render(msg)
	if err != nil {
		n.logger.Error("render notification failed", zap.String("template", msg.Template), zap.Error(err))
		return err
	}

	return n.mailer.Send(ctx, msg.To, subject, body)
}
