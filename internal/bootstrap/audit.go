package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operator-facing lifecycle events, separate from the
// request logs.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
