package queries

import (
	"context"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderStatusHistoryQueryResponse struct {
	ID            kernel.UUID
	From          order.Status
	To            order.Status
	ChangedBy     kernel.UUID
	ChangedByRole role.Role
	FileURL       string
	ChangedAt     time.Time
}

type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle returns the history oldest first, or errs.ErrObjectNotFound when the
// order does not exist or was deleted.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]GetOrderStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var exists bool
	err := db.Raw(
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ? AND deleted_at IS NULL)`,
		orderID.Bytes(),
	).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			from_status,
			to_status,
			changed_by,
			changed_by_role,
			file_url,
			changed_at
		FROM order_status_logs
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderStatusHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			resp              GetOrderStatusHistoryQueryResponse
			id, changedBy     uuid.UUID
			from, to, roleStr string
		)

		err = rows.Scan(&id, &from, &to, &changedBy, &roleStr, &resp.FileURL, &resp.ChangedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ChangedBy, err = kernel.UUIDFromBytes(changedBy[:]); err != nil {
			return nil, err
		}
		if resp.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if resp.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if resp.ChangedByRole, err = role.ParseRole(roleStr); err != nil {
			return nil, err
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
