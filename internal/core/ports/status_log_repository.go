package ports

import (
	"context"

	"seomarket/internal/core/domain/model/statuslog"
)

// StatusLogRepository stores the audit trail of order status changes.
type StatusLogRepository interface {
	Add(ctx context.Context, entry *statuslog.Entry) error
}
