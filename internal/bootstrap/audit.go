package bootstrap

import "context"

// AuditLog adalah satu kejadian yang perlu jejak audit (lifecycle server, keputusan review).
type AuditLog struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
