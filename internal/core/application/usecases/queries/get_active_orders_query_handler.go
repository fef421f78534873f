package queries

import (
	"context"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	TeamID          kernel.UUID
	UserID          kernel.UUID
	Status          order.Status
	StatusChangedAt time.Time
	Price           kernel.Money
	CreatedAt       time.Time
}

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			team_id,
			user_id,
			status,
			status_changed_at,
			price,
			created_at
		FROM orders
		WHERE deleted_at IS NULL AND status NOT IN ?
		ORDER BY created_at, id
		LIMIT ?
	`, terminalStatusCodes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp               GetActiveOrdersQueryResponse
			id, teamID, userID uuid.UUID
			status             string
			price              decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&teamID,
			&userID,
			&status,
			&resp.StatusChangedAt,
			&price,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.TeamID, err = kernel.UUIDFromBytes(teamID[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func terminalStatusCodes() []string {
	codes := make([]string, 0)
	for _, s := range order.AllStatuses() {
		if s.IsTerminal() {
			codes = append(codes, s.String())
		}
	}
	return codes
}
