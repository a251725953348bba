package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/time-manager/internal/model"
	"github.com/Leganyst/time-manager/internal/schedule"
)

type TimeScheduleRepository interface {
	// ListByContactCenter returns the schedules of one contact center in
	// insertion order. With days given, only those days are returned.
	ListByContactCenter(ctx context.Context, contactCenterID string, days ...schedule.Weekday) ([]model.TimeSchedule, error)
	Create(ctx context.Context, ts *model.TimeSchedule) error
}

type GormTimeScheduleRepository struct {
	db *gorm.DB
}

func NewGormTimeScheduleRepository(db *gorm.DB) *GormTimeScheduleRepository {
	return &GormTimeScheduleRepository{db: db}
}

func (r *GormTimeScheduleRepository) ListByContactCenter(
	ctx context.Context,
	contactCenterID string,
	days ...schedule.Weekday,
) ([]model.TimeSchedule, error) {
	q := r.db.WithContext(ctx).
		Where("contact_center_id = ?", contactCenterID)

	if len(days) > 0 {
		names := make([]string, 0, len(days))
		for _, d := range days {
			names = append(names, d.String())
		}
		q = q.Where("day IN ?", names)
	}

	var schedules []model.TimeSchedule
	if err := q.Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *GormTimeScheduleRepository) Create(ctx context.Context, ts *model.TimeSchedule) error {
	return r.db.WithContext(ctx).Create(ts).Error
}
