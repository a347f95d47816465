package pricing

import (
	"context"
	"encoding/json"
)

// RepositoryInterface defines the interface for pricing config storage
type RepositoryInterface interface {
	GetActiveConfig(ctx context.Context) (*PricingConfig, error)
	UpdateSection(ctx context.Context, section string, payload json.RawMessage, actor string) (*PricingConfig, error)
	ListAuditLogs(ctx context.Context, limit, offset int) ([]*AuditLog, int64, error)
}

// ConfigResolver supplies the configuration snapshot a quote runs
// against and invalidates any cached copy after an admin edit.
type ConfigResolver interface {
	Resolve(ctx context.Context) (*PricingConfig, error)
	Invalidate(ctx context.Context) error
}
