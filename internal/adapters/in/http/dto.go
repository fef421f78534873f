package http

import (
	"time"

	"seomarket/internal/core/application/usecases/queries"
	"seomarket/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TransitionError is the 403 body of a refused status change. AllowedStatuses
// lists every status the caller's role may request, possibly none.
type TransitionError struct {
	Error
	AllowedStatuses []string `json:"allowedStatuses"`
}

type StatusOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Amounts are accepted as JSON numbers or decimal strings.
type NewOrder struct {
	DomainID string           `json:"domainId"`
	TeamID   string           `json:"teamId"`
	Price    *decimal.Decimal `json:"price"`
}

type CreatedOrder struct {
	ID string `json:"id"`
}

type StatusChange struct {
	Status  string `json:"status"`
	FileURL string `json:"fileUrl"`
}

type StatusChangeResult struct {
	Status          StatusOption   `json:"status"`
	AllowedStatuses []StatusOption `json:"allowedStatuses"`
}

// PricingChange omits Discount and PriceAdjustment to set them to zero.
type PricingChange struct {
	Price           *decimal.Decimal `json:"price"`
	Discount        *decimal.Decimal `json:"discount"`
	PriceAdjustment *decimal.Decimal `json:"priceAdjustment"`
}

type Order struct {
	ID              string         `json:"id"`
	DomainID        string         `json:"domainId"`
	TeamID          string         `json:"teamId"`
	UserID          string         `json:"userId"`
	Status          StatusOption   `json:"status"`
	StatusChangedAt time.Time      `json:"statusChangedAt"`
	FileURL         string         `json:"fileUrl"`
	Price           string         `json:"price"`
	Discount        string         `json:"discount"`
	PriceAdjustment string         `json:"priceAdjustment"`
	Total           string         `json:"total"`
	Version         int            `json:"version"`
	CreatedAt       time.Time      `json:"createdAt"`
	AllowedStatuses []StatusOption `json:"allowedStatuses"`
	NextStatuses    []StatusOption `json:"nextStatuses"`
}

type ActiveOrder struct {
	ID              string       `json:"id"`
	TeamID          string       `json:"teamId"`
	UserID          string       `json:"userId"`
	Status          StatusOption `json:"status"`
	StatusChangedAt time.Time    `json:"statusChangedAt"`
	Price           string       `json:"price"`
	CreatedAt       time.Time    `json:"createdAt"`
}

type HistoryEntry struct {
	ID            string       `json:"id"`
	From          StatusOption `json:"from"`
	To            StatusOption `json:"to"`
	ChangedBy     string       `json:"changedBy"`
	ChangedByRole string       `json:"changedByRole"`
	FileURL       string       `json:"fileUrl,omitempty"`
	ChangedAt     time.Time    `json:"changedAt"`
}

func toStatusOption(s order.Status) StatusOption {
	return StatusOption{Code: s.String(), Label: s.Label()}
}

func toStatusOptions(statuses []order.Status) []StatusOption {
	options := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, toStatusOption(s))
	}
	return options
}

func fromQueryOptions(options []queries.StatusOption) []StatusOption {
	result := make([]StatusOption, 0, len(options))
	for _, o := range options {
		result = append(result, StatusOption{Code: o.Code, Label: o.Label})
	}
	return result
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	return Order{
		ID:              o.ID.String(),
		DomainID:        o.DomainID.String(),
		TeamID:          o.TeamID.String(),
		UserID:          o.UserID.String(),
		Status:          toStatusOption(o.Status),
		StatusChangedAt: o.StatusChangedAt,
		FileURL:         o.FileURL,
		Price:           o.Price.String(),
		Discount:        o.Discount.String(),
		PriceAdjustment: o.PriceAdjustment.String(),
		Total:           o.Total.String(),
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		AllowedStatuses: toStatusOptions(o.AllowedStatuses),
		NextStatuses:    toStatusOptions(o.NextStatuses),
	}
}

func toActiveOrder(o queries.GetActiveOrdersQueryResponse) ActiveOrder {
	return ActiveOrder{
		ID:              o.ID.String(),
		TeamID:          o.TeamID.String(),
		UserID:          o.UserID.String(),
		Status:          toStatusOption(o.Status),
		StatusChangedAt: o.StatusChangedAt,
		Price:           o.Price.String(),
		CreatedAt:       o.CreatedAt,
	}
}

func toHistoryEntry(e queries.GetOrderStatusHistoryQueryResponse) HistoryEntry {
	return HistoryEntry{
		ID:            e.ID.String(),
		From:          toStatusOption(e.From),
		To:            toStatusOption(e.To),
		ChangedBy:     e.ChangedBy.String(),
		ChangedByRole: e.ChangedByRole.String(),
		FileURL:       e.FileURL,
		ChangedAt:     e.ChangedAt,
	}
}
