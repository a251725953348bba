package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactCenter owns the weekly time schedules that decide when it is open.
type ContactCenter struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	TimeSchedules []TimeSchedule `gorm:"foreignKey:ContactCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate fills the id on the client side so sqlite and postgres behave
// the same way.
func (c *ContactCenter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
