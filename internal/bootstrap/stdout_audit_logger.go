package bootstrap

import (
	"context"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	md := contextutil.ExtractMetadata(ctx)
	actorID := entry.ActorID
	if actorID == "" {
		actorID = md.ActorID
	}
	if actorID != "" {
		fields = append(fields, zap.String("actor_id", actorID))
	}
	if md.ActorRole != "" {
		fields = append(fields, zap.String("actor_role", md.ActorRole))
	}
	if md.RequestID != "" {
		fields = append(fields, zap.String("request_id", md.RequestID))
	}
	l.logger.Info("audit event", fields...)
}
