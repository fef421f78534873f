package statuslogrepo

import (
	"context"

	"seomarket/internal/core/domain/model/statuslog"

	"gorm.io/gorm"
)

// GormStatusLogRepository implements ports.StatusLogRepository. Entries are
// only ever inserted.
type GormStatusLogRepository struct {
	db *gorm.DB
}

func NewGormStatusLogRepository(db *gorm.DB) *GormStatusLogRepository {
	return &GormStatusLogRepository{
		db: db,
	}
}

func (r *GormStatusLogRepository) Add(ctx context.Context, entry *statuslog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
