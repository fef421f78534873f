package queries

import (
	"context"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/services"
	"seomarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryResponse is an order together with what the requester may do
// with it.
//
// AllowedStatuses is every status the requester's role may request at all.
// NextStatuses is the subset reachable from the current status right now.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	DomainID        kernel.UUID
	TeamID          kernel.UUID
	UserID          kernel.UUID
	Status          order.Status
	StatusChangedAt time.Time
	FileURL         string
	Price           kernel.Money
	Discount        kernel.Money
	PriceAdjustment kernel.Money
	Total           kernel.Money
	Version         int
	CreatedAt       time.Time
	AllowedStatuses []order.Status
	NextStatuses    []order.Status
}

type GetOrderQueryHandler struct {
	db        *gorm.DB
	authority services.OrderStatusAuthority
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:        db,
		authority: services.NewOrderStatusAuthority(),
	}
}

// Handle returns errs.ErrObjectNotFound for missing and deleted orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			domain_id,
			team_id,
			user_id,
			status,
			status_changed_at,
			file_url,
			price,
			discount,
			price_adjustment,
			version,
			created_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		id, domainID, teamID, userID     uuid.UUID
		status                           string
		price, discount, priceAdjustment decimal.Decimal
		resp                             GetOrderQueryResponse
	)
	err = rows.Scan(
		&id,
		&domainID,
		&teamID,
		&userID,
		&status,
		&resp.StatusChangedAt,
		&resp.FileURL,
		&price,
		&discount,
		&priceAdjustment,
		&resp.Version,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DomainID, err = kernel.UUIDFromBytes(domainID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TeamID, err = kernel.UUIDFromBytes(teamID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Price, err = kernel.NewMoney(price); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Discount, err = kernel.NewMoney(discount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PriceAdjustment, err = kernel.NewMoney(priceAdjustment); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Total = resp.Price.Sub(resp.Discount).Add(resp.PriceAdjustment)

	r := query.Requester().Role()
	resp.AllowedStatuses = h.authority.AllowedStatuses(r)
	resp.NextStatuses = make([]order.Status, 0, len(resp.AllowedStatuses))
	for _, target := range resp.AllowedStatuses {
		if h.authority.CheckPermission(r, resp.Status, target).Granted {
			resp.NextStatuses = append(resp.NextStatuses, target)
		}
	}

	return resp, nil
}
