// Package orderrepo persists the order aggregate with GORM.
package orderrepo

import (
	"errors"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO is the row of the orders table. Status is stored in its wire form so
// the table stays readable and the enum order can change freely.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DomainID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TeamID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          string          `gorm:"type:varchar(40);not null;index"`
	StatusChangedAt time.Time       `gorm:"type:timestamptz;not null"`
	FileURL         string          `gorm:"type:varchar(2048);not null;default:''"`
	Price           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Discount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PriceAdjustment decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Version         int             `gorm:"not null;default:0"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null"`
	UpdatedAt       time.Time       `gorm:"type:timestamptz"`
	DeletedAt       gorm.DeletedAt  `gorm:"type:timestamptz;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		DomainID:        o.DomainID().Bytes(),
		TeamID:          o.TeamID().Bytes(),
		UserID:          o.UserID().Bytes(),
		Status:          o.Status().String(),
		StatusChangedAt: o.StatusChangedAt(),
		FileURL:         o.FileURL(),
		Price:           o.Price().Decimal(),
		Discount:        o.Discount().Decimal(),
		PriceAdjustment: o.PriceAdjustment().Decimal(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so a corrupted row is
// reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	domainID, domainErr := kernel.UUIDFromBytes(dto.DomainID[:])
	teamID, teamErr := kernel.UUIDFromBytes(dto.TeamID[:])
	userID, userErr := kernel.UUIDFromBytes(dto.UserID[:])
	status, statusErr := order.ParseStatus(dto.Status)
	price, priceErr := kernel.NewMoney(dto.Price)
	discount, discountErr := kernel.NewMoney(dto.Discount)
	adjustment, adjustmentErr := kernel.NewMoney(dto.PriceAdjustment)

	if err := errors.Join(
		idErr, domainErr, teamErr, userErr, statusErr, priceErr, discountErr, adjustmentErr,
	); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:              id,
		DomainID:        domainID,
		TeamID:          teamID,
		UserID:          userID,
		Status:          status,
		StatusChangedAt: dto.StatusChangedAt,
		FileURL:         dto.FileURL,
		Price:           price,
		Discount:        discount,
		PriceAdjustment: adjustment,
		CreatedAt:       dto.CreatedAt,
		Version:         dto.Version,
	})
}
