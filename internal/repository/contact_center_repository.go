package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/time-manager/internal/model"
)

type ContactCenterRepository interface {
	GetByID(ctx context.Context, id string) (*model.ContactCenter, error)
	GetByName(ctx context.Context, name string) (*model.ContactCenter, error)
	// List returns one page ordered by name and the total count.
	List(ctx context.Context, limit, offset int) ([]model.ContactCenter, int64, error)
	Create(ctx context.Context, cc *model.ContactCenter) error
}

type GormContactCenterRepository struct {
	db *gorm.DB
}

func NewGormContactCenterRepository(db *gorm.DB) *GormContactCenterRepository {
	return &GormContactCenterRepository{db: db}
}

func (r *GormContactCenterRepository) GetByID(ctx context.Context, id string) (*model.ContactCenter, error) {
	var cc model.ContactCenter
	if err := r.db.WithContext(ctx).First(&cc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *GormContactCenterRepository) GetByName(ctx context.Context, name string) (*model.ContactCenter, error) {
	var cc model.ContactCenter
	if err := r.db.WithContext(ctx).First(&cc, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *GormContactCenterRepository) List(ctx context.Context, limit, offset int) ([]model.ContactCenter, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ContactCenter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var items []model.ContactCenter
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormContactCenterRepository) Create(ctx context.Context, cc *model.ContactCenter) error {
	return r.db.WithContext(ctx).Create(cc).Error
}
