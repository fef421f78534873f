// Package statuslogrepo stores the order status audit trail. Reads go through
// the history query.
package statuslogrepo

import (
	"time"

	"seomarket/internal/core/domain/model/statuslog"

	"github.com/google/uuid"
)

type EntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus    string    `gorm:"type:varchar(40);not null"`
	ToStatus      string    `gorm:"type:varchar(40);not null"`
	ChangedBy     uuid.UUID `gorm:"type:uuid;not null"`
	ChangedByRole string    `gorm:"type:varchar(40);not null"`
	FileURL       string    `gorm:"type:varchar(2048);not null;default:''"`
	ChangedAt     time.Time `gorm:"type:timestamptz;not null"`
}

func (EntryDTO) TableName() string {
	return "order_status_logs"
}

func fromDomain(e *statuslog.Entry) EntryDTO {
	return EntryDTO{
		ID:            e.ID().Bytes(),
		OrderID:       e.OrderID().Bytes(),
		FromStatus:    e.From().String(),
		ToStatus:      e.To().String(),
		ChangedBy:     e.ChangedBy().Bytes(),
		ChangedByRole: e.ChangedByRole().String(),
		FileURL:       e.FileURL(),
		ChangedAt:     e.ChangedAt(),
	}
}
